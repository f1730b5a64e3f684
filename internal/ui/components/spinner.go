package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anand/fintype/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with fintype styling, shown while the
// store is loading or a result is being persisted.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a styled spinner with the given label.
func NewSpinner(label string) Spinner {
	m := spinner.New()
	m.Spinner = spinner.Dot
	m.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{
		Model: m,
		Label: label,
	}
}

// Init starts the spinner ticking.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the spinner animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner and its label.
func (s Spinner) View() string {
	out := s.Model.View()
	if s.Label != "" {
		out += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
	}
	return out
}
