package dataset

import (
	"fmt"

	"github.com/jwebster45206/portal-router/pkg/route"
)

// Warning is a non-fatal issue found in a dataset.
type Warning struct {
	Edge    int    `json:"edge"` // -1 when the warning is about a location
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Edge < 0 {
		return w.Message
	}
	return fmt.Sprintf("edge %d: %s", w.Edge, w.Message)
}

// Lint reports self-loops, duplicate edges, dead ends and locations that no
// other location leads to. None of these stop the router from working.
func Lint(edges []route.Edge) []Warning {
	var warnings []Warning

	seen := make(map[route.Edge]int)
	outgoing := make(map[route.Location]bool)
	incoming := make(map[route.Location]bool)

	for i, e := range edges {
		if e.From == e.To {
			warnings = append(warnings, Warning{Edge: i, Message: fmt.Sprintf("self-loop at %q", e.From)})
		} else {
			incoming[e.To] = true
		}
		outgoing[e.From] = true

		if first, dup := seen[e]; dup {
			warnings = append(warnings, Warning{Edge: i, Message: fmt.Sprintf("duplicate of edge %d", first)})
		} else {
			seen[e] = i
		}
	}

	for _, loc := range route.NewDataset(edges).Locations() {
		if !outgoing[loc] {
			warnings = append(warnings, Warning{Edge: -1, Message: fmt.Sprintf("%q has no outgoing edges", loc)})
		}
		if !incoming[loc] {
			warnings = append(warnings, Warning{Edge: -1, Message: fmt.Sprintf("%q cannot be reached from any other location", loc)})
		}
	}

	return warnings
}
