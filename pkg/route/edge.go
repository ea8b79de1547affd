package route

import "strings"

// Location names a place in the travel network. Only equality is meaningful.
type Location string

// Matches reports whether query appears in the location name, ignoring case.
// An empty query matches everything.
func (l Location) Matches(query string) bool {
	return strings.Contains(foldName(string(l)), foldName(query))
}

// Edge is a directed connection between two locations.
type Edge struct {
	From     Location      `json:"from"`
	To       Location      `json:"to"`
	Portal   string        `json:"portal"`             // Traversal action shown to the user
	Requires CapabilitySet `json:"requires,omitempty"` // Every member must be held
}

// ActiveUnder reports whether the edge is usable by someone holding held.
func (e Edge) ActiveUnder(held CapabilitySet) bool {
	return held.Contains(e.Requires)
}

// Step is one traversal in a route.
type Step struct {
	From   Location `json:"from"`
	Portal string   `json:"portal"`
	To     Location `json:"to"`
}

// Path is an ordered route from a start location to an end location.
// An empty, non-nil Path means the traveller is already at the destination.
type Path []Step

// Start returns the first location of a non-empty path.
func (p Path) Start() Location {
	if len(p) == 0 {
		return ""
	}
	return p[0].From
}

// End returns the last location of a non-empty path.
func (p Path) End() Location {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1].To
}

// Valid reports whether every step chains into the next.
func (p Path) Valid() bool {
	for i := 1; i < len(p); i++ {
		if p[i-1].To != p[i].From {
			return false
		}
	}
	return true
}
