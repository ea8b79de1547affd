package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/portal-router/pkg/route"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATASET_PATH", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFind_Text(t *testing.T) {
	out, err := run(t, "find", "Haunted House", "Bent Tree", "--cap", "Map", "--cap", "mobility")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Haunted House to Bent Tree, 3 hops:"))
	assert.Contains(t, out, "Haunted House --[Cellar hatch (bottom right)]-->")
}

func TestFind_JSON(t *testing.T) {
	out, err := run(t, "find", "Haunted House", "Bent Tree", "--cap", "Mobility", "--json")
	require.NoError(t, err)

	var res route.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, route.OutcomeFound, res.Outcome)
	assert.Equal(t, 4, res.Hops())
	assert.Equal(t, route.NewCapabilitySet(route.CapabilityMobility), res.Capabilities)
}

func TestFind_NoRoute(t *testing.T) {
	out, err := run(t, "find", "Haunted House", "Headless Horseman's Lair", "--explain")
	require.ErrorIs(t, err, errNoRoute)

	assert.Contains(t, out, "No route from Haunted House to Headless Horseman's Lair (capabilities: none).")
	assert.Contains(t, out, "reachable with capabilities: Mobility")
}

func TestFind_UnknownLocation(t *testing.T) {
	out, err := run(t, "find", "Haunted House", "Moon", "--explain", "--cap", "Map,Mobility")
	require.ErrorIs(t, err, errNoRoute)

	assert.Contains(t, out, "unknown location: Moon")
	assert.NotContains(t, out, "reachable with")
}

func TestFind_Arrived(t *testing.T) {
	out, err := run(t, "find", "Crossroads", "Crossroads")
	require.NoError(t, err)
	assert.Equal(t, "You are already at Crossroads.\n", out)
}

func TestFind_Errors(t *testing.T) {
	_, err := run(t, "find", "Haunted House")
	assert.Error(t, err)

	_, err = run(t, "find", "A", "B", "--cap", "Lantern")
	assert.ErrorContains(t, err, "invalid --cap")

	_, err = run(t, "--dataset", filepath.Join(t.TempDir(), "missing.json"), "locations")
	assert.ErrorContains(t, err, "failed to load dataset")
}

func TestLocations(t *testing.T) {
	out, err := run(t, "locations", "--match", "HAUNTED")
	require.NoError(t, err)
	assert.Equal(t, "Haunted Hill\nHaunted House\n", out)

	out, err = run(t, "locations")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 14)
}

func TestEdges_CustomDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- from: A
  to: B
  portal: gate
- from: B
  to: C
  portal: ladder
  requiresMobility: true
`), 0o644))

	out, err := run(t, "--dataset", path, "edges")
	require.NoError(t, err)
	assert.Contains(t, out, "gate")
	assert.NotContains(t, out, "ladder")

	out, err = run(t, "--dataset", path, "edges", "--cap", "Mobility")
	require.NoError(t, err)
	assert.Contains(t, out, "ladder")
	assert.Contains(t, out, "Mobility")
}

func TestSmallestSufficient(t *testing.T) {
	both := route.NewCapabilitySet(route.CapabilityMap, route.CapabilityMobility)
	ds := route.NewDataset([]route.Edge{
		{From: "A", To: "B", Portal: "open"},
		{From: "B", To: "C", Portal: "ledge", Requires: route.NewCapabilitySet(route.CapabilityMobility)},
		{From: "A", To: "C", Portal: "vault", Requires: both},
		{From: "C", To: "D", Portal: "sealed", Requires: both},
	})

	tests := []struct {
		name  string
		end   route.Location
		want  route.CapabilitySet
		found bool
	}{
		{name: "open route", end: "B", want: 0, found: true},
		{name: "fewest members wins", end: "C", want: route.NewCapabilitySet(route.CapabilityMobility), found: true},
		{name: "needs every capability", end: "D", want: both, found: true},
		{name: "unreachable", end: "Z", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := smallestSufficient(ds, "A", tt.end)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
