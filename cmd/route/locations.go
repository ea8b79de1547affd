package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLocationsCmd(opts *options) *cobra.Command {
	var match string

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List known locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load()
			if err != nil {
				return err
			}
			for _, loc := range ds.Locations() {
				if match == "" || loc.Matches(match) {
					fmt.Fprintln(cmd.OutOrStdout(), loc)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&match, "match", "", "only list locations containing this text (case-insensitive)")
	return cmd
}
