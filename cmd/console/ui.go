package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/portal-router/pkg/route"
)

type focus int

const (
	focusStart focus = iota
	focusEnd
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	router    *route.Router
	locations []route.Location

	start int
	end   int
	held  route.CapabilitySet
	focus focus

	result route.Result
	status string
	err    error

	resultViewport viewport.Model
	help           help.Model
	ready          bool
	width          int
	height         int

	// copyText is swapped out in tests.
	copyText func(string) error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color("62"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	heldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	foundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	notFoundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")) // purple
)

// NewConsoleUI selects start and end by name when they exist in the
// dataset, falling back to the first and last locations.
func NewConsoleUI(router *route.Router, start, end route.Location, held route.CapabilitySet) ConsoleUI {
	locations := router.Dataset().Locations()

	m := ConsoleUI{
		router:         router,
		locations:      locations,
		start:          indexOf(locations, start, 0),
		end:            indexOf(locations, end, len(locations)-1),
		held:           held,
		focus:          focusStart,
		resultViewport: viewport.New(60, 8),
		help:           help.New(),
		copyText:       clipboard.WriteAll,
	}
	m.recompute()
	return m
}

func indexOf(locations []route.Location, loc route.Location, fallback int) int {
	for i, l := range locations {
		if l == loc {
			return i
		}
	}
	if fallback < 0 {
		return 0
	}
	return fallback
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		m.resultViewport.Width = max(msg.Width-4, 20)
		m.resultViewport.Height = max(msg.Height-len(m.locations)-10, 5)
		m.ready = true
		m.refreshResult()
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, keys.Focus):
			if m.focus == focusStart {
				m.focus = focusEnd
			} else {
				m.focus = focusStart
			}
			return m, nil
		case key.Matches(msg, keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, keys.Map):
			m.held = m.held.Toggle(route.CapabilityMap)
		case key.Matches(msg, keys.Mobility):
			m.held = m.held.Toggle(route.CapabilityMobility)
		case key.Matches(msg, keys.Swap):
			m.start, m.end = m.end, m.start
		case key.Matches(msg, keys.Copy):
			if err := m.copyText(m.result.Text()); err != nil {
				m.err = fmt.Errorf("copy failed: %w", err)
			} else {
				m.status = "Route copied to clipboard"
			}
			return m, nil
		default:
			return m, nil
		}

		m.recompute()
		return m, nil
	}

	var cmd tea.Cmd
	m.resultViewport, cmd = m.resultViewport.Update(msg)
	return m, cmd
}

func (m *ConsoleUI) moveCursor(delta int) {
	n := len(m.locations)
	if n == 0 {
		return
	}
	if m.focus == focusStart {
		m.start = (m.start + delta + n) % n
	} else {
		m.end = (m.end + delta + n) % n
	}
}

func (m *ConsoleUI) recompute() {
	if len(m.locations) == 0 {
		return
	}
	m.result = m.router.Route(m.locations[m.start], m.locations[m.end], m.held)
	m.refreshResult()
}

func (m *ConsoleUI) refreshResult() {
	text := wordwrap.String(m.result.Text(), m.resultViewport.Width)

	style := foundStyle
	if !m.result.Reachable() {
		style = notFoundStyle
	}
	m.resultViewport.SetContent(style.Render(text))
	m.resultViewport.GotoTop()
}

func (m ConsoleUI) renderList(title string, selected int, focused bool) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render(title) + "\n")
	for i, loc := range m.locations {
		if i == selected {
			content.WriteString(selectedItemStyle.Render("▶ " + string(loc)))
		} else {
			content.WriteString(itemStyle.Render("  " + string(loc)))
		}
		content.WriteString("\n")
	}

	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	return style.Render(strings.TrimRight(content.String(), "\n"))
}

func (m ConsoleUI) renderCapabilities() string {
	parts := make([]string, 0, len(route.AllCapabilities))
	for _, c := range route.AllCapabilities {
		if m.held.Has(c) {
			parts = append(parts, heldStyle.Render("[x] "+c.String()))
		} else {
			parts = append(parts, missingStyle.Render("[ ] "+c.String()))
		}
	}
	return "Capabilities: " + strings.Join(parts, "  ")
}

func (m ConsoleUI) View() string {
	if len(m.locations) == 0 {
		return errorStyle.Render("No locations loaded.") + "\n"
	}

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList("FROM", m.start, m.focus == focusStart),
		" ",
		m.renderList("TO", m.end, m.focus == focusEnd),
	)

	var content strings.Builder
	content.WriteString(titleStyle.Render("PORTAL ROUTER") + "\n\n")
	content.WriteString(lists + "\n\n")
	content.WriteString(m.renderCapabilities() + "\n\n")
	content.WriteString(m.resultViewport.View() + "\n")

	switch {
	case m.err != nil:
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	case m.status != "":
		content.WriteString(statusStyle.Render(m.status) + "\n")
	default:
		content.WriteString("\n")
	}

	content.WriteString(m.help.View(keys))
	return content.String()
}
