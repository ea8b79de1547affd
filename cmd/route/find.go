package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/bits"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/portal-router/pkg/route"
)

func newFindCmd(opts *options) *cobra.Command {
	var (
		caps    []string
		asJSON  bool
		explain bool
		width   int
	)

	cmd := &cobra.Command{
		Use:   "find START END",
		Short: "Find the shortest route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			held, err := parseCaps(caps)
			if err != nil {
				return err
			}
			ds, err := opts.load()
			if err != nil {
				return err
			}

			start, end := route.Location(args[0]), route.Location(args[1])
			res := route.NewRouter(ds).Route(start, end, held)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
			} else {
				fmt.Fprintln(out, wordwrap.String(res.Text(), width))
				if explain {
					writeExplanation(out, ds, res)
				}
			}

			if !res.Reachable() {
				return errNoRoute
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&caps, "cap", nil, "capability held (repeatable or comma-separated)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "print search details")
	cmd.Flags().IntVar(&width, "width", 80, "wrap text output at this width")
	return cmd
}

func writeExplanation(w io.Writer, ds *route.Dataset, res route.Result) {
	active := ds.Filter(res.Capabilities)
	fmt.Fprintf(w, "\nactive edges: %d of %d\n", len(active), ds.Len())

	for _, loc := range []route.Location{res.Start, res.End} {
		if !ds.HasLocation(loc) {
			fmt.Fprintf(w, "unknown location: %s\n", loc)
		}
	}

	if res.Reachable() {
		return
	}
	if needed, ok := smallestSufficient(ds, res.Start, res.End); ok {
		fmt.Fprintf(w, "reachable with capabilities: %s\n", needed)
	}
}

// smallestSufficient returns the capability set with the fewest members
// under which end is reachable from start.
func smallestSufficient(ds *route.Dataset, start, end route.Location) (route.CapabilitySet, bool) {
	all := route.NewCapabilitySet(route.AllCapabilities...)
	var (
		best  route.CapabilitySet
		found bool
	)
	for i := 0; i <= int(all); i++ {
		s := route.CapabilitySet(i)
		if !all.Contains(s) {
			continue
		}
		if _, ok := route.Distance(ds.Filter(s), start, end); !ok {
			continue
		}
		if !found || bits.OnesCount8(uint8(s)) < bits.OnesCount8(uint8(best)) {
			best, found = s, true
		}
	}
	return best, found
}
