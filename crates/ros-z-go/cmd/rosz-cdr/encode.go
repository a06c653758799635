package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newEncodeCmd(a *app) *cobra.Command {
	var input, output string
	var asHex bool
	cmd := &cobra.Command{
		Use:   "encode TYPE",
		Short: "Encode a YAML message as encapsulated CDR",
		Long: `encode reads one message in YAML, keyed by the ROS field names, and writes
its encapsulated little-endian CDR form. Missing fields keep their zero value.`,
		Args: cobra.ExactArgs(1),
		RunE: a.withStats(func(cmd *cobra.Command, args []string) error {
			typeName := args[0]
			ts, err := a.codec.Lookup(typeName)
			if err != nil {
				return err
			}
			data, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			msg := ts.Callbacks.New()
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(msg); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("invalid %s: %w", ts.Name(), err)
			}

			out, err := a.codec.Serialize(typeName, msg)
			if err != nil {
				return err
			}
			size := len(out)
			if asHex {
				out = []byte(hex.EncodeToString(out) + "\n")
			}
			if err := writeOutput(cmd.OutOrStdout(), output, out); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "encoded %s: %s\n", ts.Name(), humanize.Bytes(uint64(size)))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "YAML message file (- for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "CDR output file (- for stdout)")
	cmd.Flags().BoolVar(&asHex, "hex", false, "Write the CDR bytes as hex text")
	return cmd
}
