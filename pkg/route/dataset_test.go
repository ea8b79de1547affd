package route

import (
	"reflect"
	"sync"
	"testing"
)

func TestNewDataset_Locations(t *testing.T) {
	ds := NewDataset([]Edge{
		{From: "Haunted House", To: "Bent Tree", Portal: "p1"},
		{From: "Bent Tree", To: "Crossroads", Portal: "p2"},
		{From: "Crossroads", To: "Haunted House", Portal: "p3"},
		{From: "Crossroads", To: "Haunted House", Portal: "p4"},
	})

	expected := []Location{"Bent Tree", "Crossroads", "Haunted House"}
	if got := ds.Locations(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if ds.Len() != 4 {
		t.Errorf("Expected 4 edges, got %d", ds.Len())
	}
	if !ds.HasLocation("Crossroads") || ds.HasLocation("Nowhere") {
		t.Error("HasLocation disagrees with the edge list")
	}
}

func TestNewDataset_IsolatedFromCaller(t *testing.T) {
	edges := gatedEdges()
	ds := NewDataset(edges)
	fp := ds.Fingerprint()

	edges[0].Portal = "mutated"
	if ds.Edges()[0].Portal != "p1" {
		t.Error("Dataset observed a change to the caller's slice")
	}

	out := ds.Edges()
	out[1].To = "Elsewhere"
	locs := ds.Locations()
	locs[0] = "Elsewhere"

	if ds.Edges()[1].To != "C" || ds.Locations()[0] != "A" {
		t.Error("Dataset accessors returned shared storage")
	}
	if ds.Fingerprint() != fp {
		t.Error("Fingerprint changed after caller mutation")
	}
}

func TestDataset_Fingerprint(t *testing.T) {
	a := NewDataset(gatedEdges())
	b := NewDataset(gatedEdges())
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("Expected equal datasets to share a fingerprint")
	}

	reordered := gatedEdges()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	if NewDataset(reordered).Fingerprint() == a.Fingerprint() {
		t.Error("Expected edge order to affect the fingerprint")
	}

	regated := gatedEdges()
	regated[0].Requires = mapOnly
	if NewDataset(regated).Fingerprint() == a.Fingerprint() {
		t.Error("Expected requirements to affect the fingerprint")
	}
}

func TestDataset_Search(t *testing.T) {
	ds := NewDataset(gatedEdges())

	tests := []struct {
		name    string
		start   Location
		end     Location
		held    CapabilitySet
		outcome Outcome
		hops    int
	}{
		{name: "arrived", start: "B", end: "B", outcome: OutcomeArrived},
		{name: "shortcut with both", start: "A", end: "D", held: both, outcome: OutcomeFound, hops: 1},
		{name: "map route without ledge", start: "A", end: "C", held: mapOnly, outcome: OutcomeFound, hops: 2},
		{name: "ledge without map", start: "A", end: "D", held: mobility, outcome: OutcomeNotFound},
		{name: "blocked by ledge", start: "A", end: "D", held: mapOnly, outcome: OutcomeNotFound},
		{name: "unknown location", start: "A", end: "Z", held: both, outcome: OutcomeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ds.Search(tt.start, tt.end, tt.held)
			if res.Outcome != tt.outcome {
				t.Fatalf("Expected outcome %v, got %v", tt.outcome, res.Outcome)
			}
			if res.Hops() != tt.hops {
				t.Errorf("Expected %d hops, got %d", tt.hops, res.Hops())
			}
			if res.Start != tt.start || res.End != tt.end || res.Capabilities != tt.held {
				t.Errorf("Result does not echo the request: %+v", res)
			}
		})
	}
}

func TestDataset_ConcurrentSearches(t *testing.T) {
	ds := NewDataset(gatedEdges())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			held := CapabilitySet(i % 4)
			res := ds.Search("A", "D", held)
			if held == both && res.Hops() != 1 {
				t.Errorf("Expected 1 hop with both capabilities, got %d", res.Hops())
			}
		}(i)
	}
	wg.Wait()
}
