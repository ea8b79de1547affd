package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/portal-router/pkg/dataset"
	"github.com/jwebster45206/portal-router/pkg/route"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dataset.json|dataset.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &DatasetValidator{out: os.Stdout}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Dataset file is valid!")
}

type DatasetValidator struct {
	out      io.Writer
	warnings []string
}

func (v *DatasetValidator) validateFile(filename string) error {
	fmt.Fprintf(v.out, "Validating %s...\n", filename)
	v.warnings = nil

	format, err := dataset.FormatFromPath(filename)
	if err != nil {
		return err
	}

	baseName := filepath.Base(filename)
	nameWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if !isValidDatasetFilename(nameWithoutExt) {
		v.addWarning(fmt.Sprintf("dataset filename '%s' should be lowercase snake_case (e.g., phantom_forest.json)", baseName))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	records, err := dataset.DecodeRecords(bytes.NewReader(data), format)
	if err != nil {
		return fmt.Errorf("file %s failed strict decoding: %w", filename, err)
	}
	edges, err := dataset.ToEdges(records)
	if err != nil {
		return fmt.Errorf("validation errors in %s: %w", filename, err)
	}

	for _, w := range dataset.Lint(edges) {
		v.addWarning(w.String())
	}

	ds := route.NewDataset(edges)
	fmt.Fprintf(v.out, "%d edges, %d locations\n", ds.Len(), len(ds.Locations()))
	if len(v.warnings) > 0 {
		fmt.Fprintf(v.out, "Warnings:\n%s\n", strings.Join(v.warnings, "\n"))
	}
	return nil
}

func (v *DatasetValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, "  - "+msg)
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidDatasetFilename(name string) bool {
	// Allow 'x.' prefix for experimental datasets
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
