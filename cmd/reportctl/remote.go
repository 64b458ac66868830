package main

import (
	"context"
	"fmt"
	"net/http"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"shotdiff/internal/reportv1"
	"shotdiff/internal/rpc"
)

func (o *rootOptions) client() *rpc.Client {
	var opts []connect.ClientOption
	if o.useJSON {
		opts = append(opts, rpc.WithJSON())
	}
	return rpc.NewClient(http.DefaultClient, o.server, opts...)
}

func (o *rootOptions) rpcContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}

func printMessage(cmd *cobra.Command, m reportv1.Message) error {
	b, err := m.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func newPushCmd(opts *rootOptions) *cobra.Command {
	var binary bool
	cmd := &cobra.Command{
		Use:   "push [file]",
		Short: "Store a report on the server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, 0)
			if err != nil {
				return err
			}
			var report reportv1.ReportData
			if binary {
				err = report.Unmarshal(data)
			} else {
				err = report.UnmarshalJSON(data)
			}
			if err != nil {
				return err
			}
			ctx, cancel := opts.rpcContext(cmd)
			defer cancel()
			sum, err := opts.client().PutReport(ctx, &report)
			if err != nil {
				return err
			}
			return printMessage(cmd, sum)
		},
	}
	cmd.Flags().BoolVar(&binary, "binary", false, "Input is the binary wire format")
	return cmd
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	var binary bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a report as canonical JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.rpcContext(cmd)
			defer cancel()
			report, err := opts.client().GetReport(ctx, args[0])
			if err != nil {
				return err
			}
			if !binary {
				return printMessage(cmd, report)
			}
			b, err := report.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().BoolVar(&binary, "binary", false, "Write the binary wire format")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var project string
	var limit uint32
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.rpcContext(cmd)
			defer cancel()
			reports, err := opts.client().ListReports(ctx, project, limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tPROJECT\tBRANCH\tCREATED\tSHOTS\tCHANGED\tAPPROVED")
			for _, r := range reports {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
					r.GetId(), r.GetProject(), r.GetBranch(),
					formatMillis(r.GetCreatedAt()),
					r.GetScreenshotCount(), r.GetChangedCount(), r.GetApprovedCount(),
				)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Only reports of this project")
	cmd.Flags().Uint32Var(&limit, "limit", 0, "Maximum number of reports (server default when 0)")
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.rpcContext(cmd)
			defer cancel()
			deleted, err := opts.client().DeleteReport(ctx, args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("report %s not found", args[0])
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		},
	}
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
