package route

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrUnknownCapability is returned when a capability name does not match any known tag.
var ErrUnknownCapability = errors.New("unknown capability")

// Capability is a single tag a traveller may hold, such as an item or a skill category.
type Capability uint8

const (
	CapabilityMap Capability = 1 << iota
	CapabilityMobility
)

// AllCapabilities lists every known capability in declaration order.
var AllCapabilities = []Capability{CapabilityMap, CapabilityMobility}

var capabilityNames = map[Capability]string{
	CapabilityMap:      "Map",
	CapabilityMobility: "Mobility",
}

// foldName normalizes a name for case-insensitive comparison. Casers are
// stateful, so a fresh one is used per call.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Capability(%d)", uint8(c))
}

// ParseCapability resolves a capability by name, ignoring case.
func ParseCapability(name string) (Capability, error) {
	key := foldName(name)
	for _, c := range AllCapabilities {
		if foldName(capabilityNames[c]) == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCapability, name)
}

// CapabilitySet is a set of capabilities held by a traveller or required by an edge.
// The zero value is the empty set.
type CapabilitySet uint8

// NewCapabilitySet returns a set holding the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range caps {
		s = s.With(c)
	}
	return s
}

// ParseCapabilities builds a set from names. Each entry may itself be a
// comma-separated list; blank entries are ignored.
func ParseCapabilities(names ...string) (CapabilitySet, error) {
	var s CapabilitySet
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			c, err := ParseCapability(name)
			if err != nil {
				return 0, err
			}
			s = s.With(c)
		}
	}
	return s, nil
}

func (s CapabilitySet) Has(c Capability) bool {
	return s&CapabilitySet(c) != 0
}

func (s CapabilitySet) With(c Capability) CapabilitySet {
	return s | CapabilitySet(c)
}

func (s CapabilitySet) Without(c Capability) CapabilitySet {
	return s &^ CapabilitySet(c)
}

// Toggle flips membership of c.
func (s CapabilitySet) Toggle(c Capability) CapabilitySet {
	return s ^ CapabilitySet(c)
}

// Contains reports whether every capability in other is also in s.
func (s CapabilitySet) Contains(other CapabilitySet) bool {
	return other&^s == 0
}

func (s CapabilitySet) IsEmpty() bool {
	return s == 0
}

// Tags returns the members of s in declaration order.
func (s CapabilitySet) Tags() []Capability {
	tags := make([]Capability, 0, len(AllCapabilities))
	for _, c := range AllCapabilities {
		if s.Has(c) {
			tags = append(tags, c)
		}
	}
	return tags
}

// Names returns the member names of s in declaration order.
func (s CapabilitySet) Names() []string {
	tags := s.Tags()
	names := make([]string, len(tags))
	for i, c := range tags {
		names[i] = c.String()
	}
	return names
}

func (s CapabilitySet) String() string {
	if s.IsEmpty() {
		return "none"
	}
	return strings.Join(s.Names(), "+")
}

// MarshalJSON encodes the set as a list of names.
func (s CapabilitySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *CapabilitySet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("capability set must be a list of names: %w", err)
	}
	parsed, err := ParseCapabilities(names...)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
