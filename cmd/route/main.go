// Command route answers portal routing questions from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/portal-router/pkg/dataset"
	"github.com/jwebster45206/portal-router/pkg/route"
)

// errNoRoute is returned by find when the destination cannot be reached.
var errNoRoute = errors.New("no route")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errNoRoute) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	datasetPath string
}

func (o *options) load() (*route.Dataset, error) {
	ds, err := dataset.Load(o.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "route",
		Short:         "Find routes through a portal graph",
		Long:          longRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(
		&opts.datasetPath,
		"dataset",
		os.Getenv("DATASET_PATH"),
		"dataset file (.json, .yaml or .yml); the built-in forest when empty",
	)

	rootCmd.AddCommand(
		newFindCmd(opts),
		newLocationsCmd(opts),
		newEdgesCmd(opts),
	)
	return rootCmd
}

func parseCaps(names []string) (route.CapabilitySet, error) {
	held, err := route.ParseCapabilities(names...)
	if err != nil {
		return 0, fmt.Errorf("invalid --cap: %w", err)
	}
	return held, nil
}

var longRoot = `
Find the shortest sequence of portals between two locations, given the
capabilities you hold.

Examples:
  # Route with both capabilities.
  route find "Haunted House" "Bent Tree" --cap Map --cap Mobility

  # List locations containing "haunted".
  route locations --match haunted
`
