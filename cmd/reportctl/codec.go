package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	"gopkg.in/yaml.v3"

	"shotdiff/internal/protoobject"
	"shotdiff/internal/reportv1"
)

func lookupMessage(name string) (protoreflect.MessageDescriptor, error) {
	md, ok := reportv1.MessageDescriptor(name)
	if !ok {
		return nil, fmt.Errorf("unknown message %q (try: %s)", name, strings.Join(reportv1.MessageNames(), ", "))
	}
	return md, nil
}

// parseObject decodes a JSON or YAML document into a plain object tree.
// JSON numbers stay json.Number so 64-bit values keep their precision.
func parseObject(data []byte, fromYAML bool) (any, error) {
	var obj any
	if fromYAML {
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		return obj, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return obj, nil
}

func newEncodeCmd() *cobra.Command {
	var asObject, fromYAML bool
	var out string
	cmd := &cobra.Command{
		Use:   "encode <message> [file]",
		Short: "Encode canonical JSON, a plain object or YAML to the binary wire format",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := lookupMessage(args[0])
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}

			var msg *dynamicpb.Message
			if asObject || fromYAML {
				obj, err := parseObject(data, fromYAML)
				if err != nil {
					return err
				}
				m, ok := obj.(map[string]any)
				if !ok {
					return fmt.Errorf("%s: object expected", md.Name())
				}
				if msg, err = protoobject.FromObject(md, m); err != nil {
					return err
				}
			} else {
				msg = dynamicpb.NewMessage(md)
				if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, msg); err != nil {
					return fmt.Errorf("parse %s json: %w", md.Name(), err)
				}
			}

			b, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
			if err != nil {
				return err
			}
			if out != "" {
				return os.WriteFile(out, b, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().BoolVar(&asObject, "object", false, "Input is a plain object (loose number and enum forms allowed)")
	cmd.Flags().BoolVar(&fromYAML, "yaml", false, "Input is a YAML plain object")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var protoNames bool
	cmd := &cobra.Command{
		Use:   "decode <message> [file]",
		Short: "Decode the binary wire format to canonical JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := lookupMessage(args[0])
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			msg := dynamicpb.NewMessage(md)
			if err := proto.Unmarshal(data, msg); err != nil {
				return fmt.Errorf("decode %s: %w", md.Name(), err)
			}
			b, err := protojson.MarshalOptions{Multiline: true, UseProtoNames: protoNames}.Marshal(msg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
	cmd.Flags().BoolVar(&protoNames, "proto-names", false, "Use .proto field names")
	return cmd
}

type objectFlags struct {
	binary     bool
	enums      string
	longs      string
	bytes      string
	defaults   bool
	arrays     bool
	objects    bool
	oneofs     bool
	protoNames bool
	yaml       bool
}

func (f objectFlags) options() (protoobject.Options, error) {
	o := protoobject.Options{
		Defaults:      f.defaults,
		Arrays:        f.arrays,
		Objects:       f.objects,
		Oneofs:        f.oneofs,
		UseProtoNames: f.protoNames,
		JSON:          !f.yaml,
	}
	switch f.enums {
	case "number":
	case "string":
		o.Enums = protoobject.EnumsAsStrings
	default:
		return o, fmt.Errorf("--enums must be number or string")
	}
	switch f.longs {
	case "number":
	case "string":
		o.Longs = protoobject.LongsAsStrings
	default:
		return o, fmt.Errorf("--longs must be number or string")
	}
	switch f.bytes {
	case "base64":
		o.Bytes = protoobject.BytesAsBase64
	case "raw":
	default:
		return o, fmt.Errorf("--bytes must be base64 or raw")
	}
	return o, nil
}

func newObjectCmd() *cobra.Command {
	var f objectFlags
	cmd := &cobra.Command{
		Use:   "object <message> [file]",
		Short: "Print a message as a plain object in JSON or YAML",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := lookupMessage(args[0])
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			msg := dynamicpb.NewMessage(md)
			if f.binary {
				err = proto.Unmarshal(data, msg)
			} else {
				err = protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, msg)
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", md.Name(), err)
			}

			obj := protoobject.ToObject(msg, opts)
			if f.yaml {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(obj); err != nil {
					return err
				}
				return enc.Close()
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(obj)
		},
	}
	cmd.Flags().BoolVar(&f.binary, "binary", false, "Input is the binary wire format instead of canonical JSON")
	cmd.Flags().StringVar(&f.enums, "enums", "number", "Enum form: number or string")
	cmd.Flags().StringVar(&f.longs, "longs", "number", "64-bit integer form: number or string")
	cmd.Flags().StringVar(&f.bytes, "bytes", "base64", "Bytes form: base64 or raw")
	cmd.Flags().BoolVar(&f.defaults, "defaults", false, "Include unset fields with their default value")
	cmd.Flags().BoolVar(&f.arrays, "arrays", false, "Always include repeated fields")
	cmd.Flags().BoolVar(&f.objects, "objects", false, "Always include map fields")
	cmd.Flags().BoolVar(&f.oneofs, "oneofs", false, "Add a key naming the set member of each oneof")
	cmd.Flags().BoolVar(&f.protoNames, "proto-names", false, "Use .proto field names")
	cmd.Flags().BoolVar(&f.yaml, "yaml", false, "Write YAML instead of JSON")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var fromYAML bool
	cmd := &cobra.Command{
		Use:   "verify <message> [file]",
		Short: "Check a plain object against a message schema",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := lookupMessage(args[0])
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			obj, err := parseObject(data, fromYAML)
			if err != nil {
				return err
			}
			if err := protoobject.Verify(md, obj); err != nil {
				return fmt.Errorf("invalid %s: %w", md.Name(), err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", md.Name())
			return err
		},
	}
	cmd.Flags().BoolVar(&fromYAML, "yaml", false, "Input is YAML")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the report schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, name := range reportv1.MessageNames() {
					if _, err := fmt.Fprintln(w, name); err != nil {
						return err
					}
				}
				return nil
			}
			_, err := fmt.Fprint(w, reportv1.Schema())
			return err
		},
	}
	cmd.Flags().BoolVar(&list, "messages", false, "List message names only")
	return cmd
}
