package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/portal-router/pkg/dataset"
	"github.com/jwebster45206/portal-router/pkg/route"
)

const (
	defaultStart = "Haunted House"
	defaultEnd   = "Bent Tree"
)

func main() {
	path := getEnv("DATASET_PATH", "")
	ds, err := dataset.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	router := route.NewRouter(ds, route.WithMemo())
	ui := NewConsoleUI(router, defaultStart, defaultEnd, route.NewCapabilitySet(route.AllCapabilities...))

	p := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
