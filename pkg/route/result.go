package route

import (
	"encoding/json"
	"fmt"
)

// Outcome classifies a search result.
type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeArrived          // start and end are the same location
	OutcomeFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeArrived:
		return "arrived"
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "arrived":
		return OutcomeArrived, nil
	case "found":
		return OutcomeFound, nil
	case "not_found":
		return OutcomeNotFound, nil
	}
	return 0, fmt.Errorf("unknown outcome %q", s)
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseOutcome(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Result is the outcome of one route request.
type Result struct {
	Start        Location      `json:"start"`
	End          Location      `json:"end"`
	Capabilities CapabilitySet `json:"capabilities"`
	Outcome      Outcome       `json:"outcome"`
	Path         Path          `json:"path"` // [] when arrived, null when not found
}

// NewResult classifies the return values of FindPath.
func NewResult(start, end Location, held CapabilitySet, path Path, ok bool) Result {
	r := Result{Start: start, End: end, Capabilities: held}
	switch {
	case !ok:
		r.Outcome = OutcomeNotFound
	case len(path) == 0:
		r.Outcome = OutcomeArrived
		r.Path = Path{}
	default:
		r.Outcome = OutcomeFound
		r.Path = path
	}
	return r
}

// Hops is the number of steps in the route; zero when arrived or not found.
func (r Result) Hops() int {
	return len(r.Path)
}

// Reachable reports whether the destination can be reached, including the
// case where the traveller is already there.
func (r Result) Reachable() bool {
	return r.Outcome != OutcomeNotFound
}

// resultJSON adds the derived hop count to the wire form.
type resultJSON struct {
	Start        Location      `json:"start"`
	End          Location      `json:"end"`
	Capabilities CapabilitySet `json:"capabilities"`
	Outcome      Outcome       `json:"outcome"`
	Hops         int           `json:"hops"`
	Path         Path          `json:"path"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Start:        r.Start,
		End:          r.End,
		Capabilities: r.Capabilities,
		Outcome:      r.Outcome,
		Hops:         r.Hops(),
		Path:         r.Path,
	})
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Result{
		Start:        w.Start,
		End:          w.End,
		Capabilities: w.Capabilities,
		Outcome:      w.Outcome,
		Path:         w.Path,
	}
	if r.Outcome == OutcomeArrived && r.Path == nil {
		r.Path = Path{}
	}
	return nil
}
