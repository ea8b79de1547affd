package route

import (
	"fmt"
	"strings"
)

// String renders a step as "from --[portal]--> to".
func (s Step) String() string {
	return fmt.Sprintf("%s --[%s]--> %s", s.From, s.Portal, s.To)
}

// Text renders the result as human-readable lines.
func (r Result) Text() string {
	switch r.Outcome {
	case OutcomeArrived:
		return fmt.Sprintf("You are already at %s.", r.Start)
	case OutcomeNotFound:
		return fmt.Sprintf("No route from %s to %s (capabilities: %s).", r.Start, r.End, r.Capabilities)
	}

	var b strings.Builder
	hops := "hops"
	if r.Hops() == 1 {
		hops = "hop"
	}
	fmt.Fprintf(&b, "%s to %s, %d %s:\n", r.Start, r.End, r.Hops(), hops)
	for i, step := range r.Path {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, step)
	}
	return strings.TrimRight(b.String(), "\n")
}
