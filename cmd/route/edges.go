package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newEdgesCmd(opts *options) *cobra.Command {
	var caps []string

	cmd := &cobra.Command{
		Use:   "edges",
		Short: "List the edges usable with the given capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			held, err := parseCaps(caps)
			if err != nil {
				return err
			}
			ds, err := opts.load()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FROM\tPORTAL\tTO\tREQUIRES")
			for _, e := range ds.Filter(held) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.From, e.Portal, e.To, e.Requires)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVar(&caps, "cap", nil, "capability held (repeatable or comma-separated)")
	return cmd
}
