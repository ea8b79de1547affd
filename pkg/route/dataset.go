package route

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// Dataset is the immutable edge collection a network is routed over.
// It is safe for concurrent use.
type Dataset struct {
	edges       []Edge
	locations   []Location
	known       map[Location]bool
	fingerprint string
}

// NewDataset copies edges into a new Dataset. Later changes to the caller's
// slice are not visible to the Dataset.
func NewDataset(edges []Edge) *Dataset {
	owned := make([]Edge, len(edges))
	copy(owned, edges)

	known := make(map[Location]bool)
	for _, e := range owned {
		known[e.From] = true
		known[e.To] = true
	}

	locations := make([]Location, 0, len(known))
	for loc := range known {
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i] < locations[j] })

	return &Dataset{
		edges:       owned,
		locations:   locations,
		known:       known,
		fingerprint: fingerprint(owned),
	}
}

// Edges returns a copy of the edges in dataset order.
func (d *Dataset) Edges() []Edge {
	out := make([]Edge, len(d.edges))
	copy(out, d.edges)
	return out
}

// Len returns the number of edges.
func (d *Dataset) Len() int {
	return len(d.edges)
}

// Locations returns every distinct from/to value, sorted.
func (d *Dataset) Locations() []Location {
	out := make([]Location, len(d.locations))
	copy(out, d.locations)
	return out
}

func (d *Dataset) HasLocation(loc Location) bool {
	return d.known[loc]
}

// Filter returns the edges active under held, in dataset order.
func (d *Dataset) Filter(held CapabilitySet) []Edge {
	return FilterEdges(d.edges, held)
}

// Search filters the dataset by held and finds a route from start to end.
func (d *Dataset) Search(start, end Location, held CapabilitySet) Result {
	path, ok := FindPath(d.Filter(held), start, end)
	return NewResult(start, end, held, path, ok)
}

// Fingerprint is a stable digest of the ordered edge list.
func (d *Dataset) Fingerprint() string {
	return d.fingerprint
}

func fingerprint(edges []Edge) string {
	h := sha256.New()
	for _, e := range edges {
		h.Write([]byte(e.From))
		h.Write([]byte{0})
		h.Write([]byte(e.To))
		h.Write([]byte{0})
		h.Write([]byte(e.Portal))
		h.Write([]byte{0, byte(e.Requires), 0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
