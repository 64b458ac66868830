package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	server  string
	useJSON bool
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "reportctl",
		Short: "Encode, inspect and exchange screenshot test reports",
		Long: `reportctl converts reports between the binary wire format, canonical
JSON and plain objects, checks objects against the report schema, and talks
to a running reportd.

Examples:
  reportctl encode ReportData report.json > report.pb
  reportctl decode ReportData report.pb
  reportctl object ReportData report.json --enums string --yaml
  reportctl verify ReportMeta meta.json
  reportctl push report.json --server http://localhost:8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", envOr("SHOTDIFF_SERVER", "http://localhost:8080"), "reportd base URL")
	root.PersistentFlags().BoolVar(&opts.useJSON, "json-rpc", false, "Use the JSON codec for RPCs instead of binary")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "RPC timeout")

	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newObjectCmd(),
		newVerifyCmd(),
		newSchemaCmd(),
		newPushCmd(opts),
		newGetCmd(opts),
		newListCmd(opts),
		newDeleteCmd(opts),
	)
	return root
}

// readInput reads the file named by args[i], or stdin when it is absent
// or "-".
func readInput(cmd *cobra.Command, args []string, i int) ([]byte, error) {
	if len(args) <= i || args[i] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[i])
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
