package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered message types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDDS TYPE\tMAX SIZE\tBOUNDED")
			for _, ts := range rosz.RegisteredMessageTypeSupports() {
				size, bounded := ts.Callbacks.MaxSerializedSize()
				maxSize := humanize.Bytes(uint64(size))
				if !bounded {
					maxSize = ">= " + maxSize
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", ts.Name(), ts.DDSTypeName(), maxSize, bounded)
			}
			return w.Flush()
		},
	}
}
