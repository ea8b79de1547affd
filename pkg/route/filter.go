package route

// FilterEdges returns the edges usable under held, preserving input order.
// The input slice is never modified.
func FilterEdges(edges []Edge, held CapabilitySet) []Edge {
	active := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.ActiveUnder(held) {
			active = append(active, e)
		}
	}
	return active
}

// Graph maps each location to its outgoing edges in input order.
type Graph map[Location][]Edge

// BuildGraph builds the adjacency structure for a set of active edges.
func BuildGraph(active []Edge) Graph {
	g := make(Graph)
	for _, e := range active {
		g[e.From] = append(g[e.From], e)
	}
	return g
}
