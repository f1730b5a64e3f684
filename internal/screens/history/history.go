package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/router"
	"github.com/anand/fintype/internal/screen"
	"github.com/anand/fintype/internal/typetext"
	"github.com/anand/fintype/internal/ui/layout"
	"github.com/anand/fintype/internal/ui/theme"
	"github.com/anand/fintype/internal/vgla"
)

type historyLoadedMsg struct {
	Records []profile.HistoryRecord
	Err     error
}

// HistoryScreen displays past assessments, newest first.
type HistoryScreen struct {
	tracker  *profile.Tracker
	records  []profile.HistoryRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(tracker *profile.Tracker) *HistoryScreen {
	return &HistoryScreen{
		tracker:  tracker,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.tracker.History(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		// Newest first for display.
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
		return historyLoadedMsg{Records: records}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet. Take your first one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.records) > 1 {
		summary := fmt.Sprintf("Stability: %.0f%%   Most common: %s",
			profile.Stability(s.records)*100, profile.MostCommonType(s.records))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(summary)))
		b.WriteString("\n\n")
	}

	for i, rec := range s.records {
		dateStr := rec.TestDate.Format("Jan 02, 2006")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  blind spot: %s",
			prefix, dateStr, rec.Combination,
			typetext.CombinationName(rec.Combination),
			typetext.DimensionName(rec.BlindSpot))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show expanded score details.
		if s.expanded[i] {
			var parts []string
			for _, d := range vgla.AllDimensions() {
				parts = append(parts, fmt.Sprintf("%s %+d", d.Letter(), rec.Totals[d]))
			}
			detail := "    " + strings.Join(parts, "   ")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
