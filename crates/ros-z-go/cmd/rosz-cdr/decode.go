package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDecodeCmd(a *app) *cobra.Command {
	var input, format string
	var fromHex bool
	cmd := &cobra.Command{
		Use:   "decode TYPE",
		Short: "Decode encapsulated CDR into YAML or a Go value dump",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStats(func(cmd *cobra.Command, args []string) error {
			typeName := args[0]
			if format != "yaml" && format != "go" {
				return fmt.Errorf("unknown format %q, want yaml or go", format)
			}
			data, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			if fromHex {
				if data, err = hex.DecodeString(string(bytes.TrimSpace(data))); err != nil {
					return fmt.Errorf("invalid hex input: %w", err)
				}
			}

			msg, err := a.codec.Deserialize(typeName, data)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case "go":
				if _, err := pretty.Fprintf(w, "%# v\n", msg); err != nil {
					return err
				}
			default:
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(msg); err != nil {
					return err
				}
				if err := enc.Close(); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "decoded %s: %s\n", typeName, humanize.Bytes(uint64(len(data))))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "CDR input file (- for stdin)")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or go")
	cmd.Flags().BoolVar(&fromHex, "hex", false, "Read the CDR bytes as hex text")
	return cmd
}
