package route

import (
	"reflect"
	"testing"
)

func TestFindPath_Scenarios(t *testing.T) {
	gated := []Edge{{From: "A", To: "B", Portal: "p1", Requires: mapOnly}}

	tests := []struct {
		name     string
		edges    []Edge
		held     CapabilitySet
		start    Location
		end      Location
		expected Path
		found    bool
	}{
		{
			name: "two hops without capabilities",
			edges: []Edge{
				{From: "A", To: "B", Portal: "p1"},
				{From: "B", To: "C", Portal: "p2"},
			},
			start: "A",
			end:   "C",
			expected: Path{
				{From: "A", Portal: "p1", To: "B"},
				{From: "B", Portal: "p2", To: "C"},
			},
			found: true,
		},
		{
			name:  "gated edge excluded without map",
			edges: gated,
			start: "A",
			end:   "B",
			found: false,
		},
		{
			name:     "gated edge included with map",
			edges:    gated,
			held:     mapOnly,
			start:    "A",
			end:      "B",
			expected: Path{{From: "A", Portal: "p1", To: "B"}},
			found:    true,
		},
		{
			name:     "start equals end",
			edges:    gatedEdges(),
			start:    "A",
			end:      "A",
			expected: Path{},
			found:    true,
		},
		{
			name:     "start equals end with no edges",
			start:    "X",
			end:      "X",
			expected: Path{},
			found:    true,
		},
		{
			name:  "unknown start",
			edges: gatedEdges(),
			held:  both,
			start: "Nowhere",
			end:   "A",
		},
		{
			name:  "unknown end",
			edges: gatedEdges(),
			held:  both,
			start: "A",
			end:   "Nowhere",
		},
		{
			name: "edges are directed",
			edges: []Edge{
				{From: "A", To: "B", Portal: "down"},
			},
			start: "B",
			end:   "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, found := FindPath(FilterEdges(tt.edges, tt.held), tt.start, tt.end)
			if found != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, found)
			}
			if !found {
				if path != nil {
					t.Errorf("Expected nil path when not found, got %v", path)
				}
				return
			}
			if path == nil {
				t.Fatal("Expected non-nil path")
			}
			if !reflect.DeepEqual(path, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, path)
			}
		})
	}
}

func TestFindPath_PrefersFewestHops(t *testing.T) {
	edges := []Edge{
		{From: "A", To: "B", Portal: "long-1"},
		{From: "B", To: "C", Portal: "long-2"},
		{From: "C", To: "D", Portal: "long-3"},
		{From: "A", To: "E", Portal: "short-1"},
		{From: "E", To: "D", Portal: "short-2"},
	}

	path, found := FindPath(edges, "A", "D")
	if !found {
		t.Fatal("Expected a path")
	}
	expected := Path{
		{From: "A", Portal: "short-1", To: "E"},
		{From: "E", Portal: "short-2", To: "D"},
	}
	if !reflect.DeepEqual(path, expected) {
		t.Errorf("Expected %v, got %v", expected, path)
	}
}

func TestFindPath_ParallelEdgesUseFirstListed(t *testing.T) {
	edges := []Edge{
		{From: "A", To: "B", Portal: "left portal"},
		{From: "A", To: "B", Portal: "right portal"},
		{From: "B", To: "C", Portal: "exit"},
	}

	path, found := FindPath(edges, "A", "C")
	if !found {
		t.Fatal("Expected a path")
	}
	if path[0].Portal != "left portal" {
		t.Errorf("Expected first listed parallel edge, got %q", path[0].Portal)
	}

	// Reversing the order flips the choice.
	edges[0], edges[1] = edges[1], edges[0]
	path, _ = FindPath(edges, "A", "C")
	if path[0].Portal != "right portal" {
		t.Errorf("Expected first listed parallel edge after reorder, got %q", path[0].Portal)
	}
}

func TestFindPath_TieBetweenDifferentNeighbours(t *testing.T) {
	edges := []Edge{
		{From: "A", To: "X", Portal: "to-x"},
		{From: "A", To: "Y", Portal: "to-y"},
		{From: "Y", To: "Z", Portal: "y-z"},
		{From: "X", To: "Z", Portal: "x-z"},
	}

	path, _ := FindPath(edges, "A", "Z")
	expected := Path{
		{From: "A", Portal: "to-x", To: "X"},
		{From: "X", Portal: "x-z", To: "Z"},
	}
	if !reflect.DeepEqual(path, expected) {
		t.Errorf("Expected the route through the first discovered neighbour, got %v", path)
	}
}

func TestFindPath_Cycles(t *testing.T) {
	edges := []Edge{
		{From: "A", To: "B", Portal: "ab"},
		{From: "B", To: "A", Portal: "ba"},
		{From: "B", To: "B", Portal: "loop"},
		{From: "B", To: "C", Portal: "bc"},
	}

	path, found := FindPath(edges, "A", "C")
	if !found || len(path) != 2 {
		t.Fatalf("Expected 2-hop path, got %v (found=%v)", path, found)
	}

	_, found = FindPath(edges[:3], "A", "C")
	if found {
		t.Error("Expected no path when C has no incoming edge")
	}
}

func TestFindPath_RemovingIncomingEdgesMakesUnreachable(t *testing.T) {
	edges := gatedEdges()
	if _, found := FindPath(FilterEdges(edges, both), "A", "D"); !found {
		t.Fatal("Expected D reachable with all capabilities")
	}

	var withoutIncoming []Edge
	for _, e := range edges {
		if e.To != "D" {
			withoutIncoming = append(withoutIncoming, e)
		}
	}
	if _, found := FindPath(FilterEdges(withoutIncoming, both), "A", "D"); found {
		t.Error("Expected D unreachable once its incoming edges are removed")
	}
}

func TestDistance(t *testing.T) {
	edges := gatedEdges()

	tests := []struct {
		held     CapabilitySet
		start    Location
		end      Location
		expected int
		found    bool
	}{
		{held: both, start: "A", end: "D", expected: 1, found: true},
		{held: mapOnly, start: "A", end: "C", expected: 2, found: true},
		{held: mapOnly, start: "A", end: "D", found: false},
		{held: 0, start: "D", end: "B", expected: 2, found: true},
		{held: 0, start: "C", end: "C", expected: 0, found: true},
	}

	for _, tt := range tests {
		got, found := Distance(FilterEdges(edges, tt.held), tt.start, tt.end)
		if found != tt.found || got != tt.expected {
			t.Errorf("Distance(%s, %s, %v): expected (%d, %v), got (%d, %v)",
				tt.start, tt.end, tt.held, tt.expected, tt.found, got, found)
		}
	}
}

func TestPath_Helpers(t *testing.T) {
	p := Path{
		{From: "A", Portal: "p1", To: "B"},
		{From: "B", Portal: "p2", To: "C"},
	}
	if p.Start() != "A" || p.End() != "C" {
		t.Errorf("Expected A..C, got %s..%s", p.Start(), p.End())
	}
	if !p.Valid() {
		t.Error("Expected chained path to be valid")
	}

	broken := Path{
		{From: "A", Portal: "p1", To: "B"},
		{From: "C", Portal: "p2", To: "D"},
	}
	if broken.Valid() {
		t.Error("Expected broken chain to be invalid")
	}

	var empty Path
	if empty.Start() != "" || empty.End() != "" || !empty.Valid() {
		t.Error("Empty path helpers should return zero values")
	}
}
