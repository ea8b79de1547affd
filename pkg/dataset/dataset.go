// Package dataset loads and validates static edge datasets for the router.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/portal-router/data"
	"github.com/jwebster45206/portal-router/pkg/route"
)

var (
	// ErrInvalidDataset wraps every structural or validation failure.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Format identifies the encoding of a dataset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Record is one edge as it appears on disk. The boolean fields are the
// original schema; Requires is the general form. Both may be combined.
type Record struct {
	From             string   `json:"from" yaml:"from" validate:"required,notblank,trimmed"`
	Portal           string   `json:"portal" yaml:"portal" validate:"required,notblank,trimmed"`
	To               string   `json:"to" yaml:"to" validate:"required,notblank,trimmed"`
	RequiresMap      bool     `json:"requiresMap,omitempty" yaml:"requiresMap,omitempty"`
	RequiresMobility bool     `json:"requiresMobility,omitempty" yaml:"requiresMobility,omitempty"`
	Requires         []string `json:"requires,omitempty" yaml:"requires,omitempty" validate:"omitempty,dive,capability"`
}

// Edge converts a validated record.
func (r Record) Edge() (route.Edge, error) {
	requires, err := route.ParseCapabilities(r.Requires...)
	if err != nil {
		return route.Edge{}, err
	}
	if r.RequiresMap {
		requires = requires.With(route.CapabilityMap)
	}
	if r.RequiresMobility {
		requires = requires.With(route.CapabilityMobility)
	}
	return route.Edge{
		From:     route.Location(r.From),
		To:       route.Location(r.To),
		Portal:   r.Portal,
		Requires: requires,
	}, nil
}

// DecodeRecords parses records without validating them. JSON input rejects
// unknown fields.
func DecodeRecords(r io.Reader, format Format) ([]Record, error) {
	var records []Record
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("%w: failed to decode JSON: %v", ErrInvalidDataset, err)
		}
		if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: failed to decode JSON: unexpected content after the edge list", ErrInvalidDataset)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&records); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrInvalidDataset, err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: failed to decode YAML: a dataset must be a single document", ErrInvalidDataset)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return records, nil
}

// Decode parses and validates a dataset, returning its edges in file order.
func Decode(r io.Reader, format Format) ([]route.Edge, error) {
	records, err := DecodeRecords(r, format)
	if err != nil {
		return nil, err
	}
	return ToEdges(records)
}

// ToEdges validates records and converts them to edges in order.
func ToEdges(records []Record) ([]route.Edge, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}

	edges := make([]route.Edge, 0, len(records))
	for i, rec := range records {
		e, err := rec.Edge()
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrInvalidDataset, i, err)
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// LoadFile reads a dataset file, choosing the format by extension.
func LoadFile(path string) (*route.Dataset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	edges, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return route.NewDataset(edges), nil
}

// Default returns the bundled Phantom Forest dataset.
func Default() (*route.Dataset, error) {
	edges, err := Decode(bytes.NewReader(data.PhantomForestJSON), FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", data.PhantomForestName, err)
	}
	return route.NewDataset(edges), nil
}

// Load reads path, or the bundled dataset when path is empty.
func Load(path string) (*route.Dataset, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
