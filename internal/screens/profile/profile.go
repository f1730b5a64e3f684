package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	prof "github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/router"
	"github.com/anand/fintype/internal/screen"
	"github.com/anand/fintype/internal/typetext"
	"github.com/anand/fintype/internal/ui/layout"
	"github.com/anand/fintype/internal/ui/theme"
)

type profileLoadedMsg struct {
	Profile *prof.Profile
	History []prof.HistoryRecord
	Err     error
}

// ProfileScreen displays the tracked money-type profile.
type ProfileScreen struct {
	tracker *prof.Tracker
	profile *prof.Profile
	history []prof.HistoryRecord
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(tracker *prof.Tracker) *ProfileScreen {
	return &ProfileScreen{tracker: tracker}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		p, err := s.tracker.Load(ctx)
		if err != nil {
			return profileLoadedMsg{Err: err}
		}
		history, err := s.tracker.History(ctx)
		if err != nil {
			return profileLoadedMsg{Profile: p, Err: err}
		}
		return profileLoadedMsg{Profile: p, History: history}
	}
}

func (s *ProfileScreen) Title() string {
	return "My Profile"
}

// Badge returns the current type code for the header.
func (s *ProfileScreen) Badge() string {
	if s.profile == nil {
		return ""
	}
	return string(s.profile.Combination)
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.profile = msg.Profile
		s.history = msg.History
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading profile...")
	}
	if s.profile == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No profile yet. Take the assessment first!")
	}

	p := s.profile
	var b strings.Builder
	b.WriteString("\n")

	center := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		fmt.Sprintf("%s  ·  %s", p.Combination, typetext.CombinationName(p.Combination)))
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Primary: %s — %s",
			typetext.DimensionName(p.Primary), typetext.DimensionBlurb(p.Primary)))
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Secondary: %s — %s",
			typetext.DimensionName(p.Secondary), typetext.DimensionBlurb(p.Secondary)))
	b.WriteString("\n")

	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Last taken: %s", p.LastTestDate.Format("Jan 02, 2006")))
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Next check-in: %s", p.NextTestDate.Format("Jan 02, 2006")))
	if prof.CheckRetakeNeeded(p, time.Now()) {
		center(lipgloss.NewStyle().Foreground(theme.Error),
			"Retake due — your money mind may have shifted")
	}
	b.WriteString("\n")

	if p.HasTypeChanged {
		changed := ""
		if p.TypeChangeDate != nil {
			changed = " on " + p.TypeChangeDate.Format("Jan 02, 2006")
		}
		center(lipgloss.NewStyle().Foreground(theme.Secondary),
			fmt.Sprintf("Type changed from %s%s", p.PreviousCombination, changed))
	}

	if len(s.history) > 1 {
		center(lipgloss.NewStyle().Foreground(theme.Text),
			fmt.Sprintf("Stability: %.0f%% over %d assessments",
				prof.Stability(s.history)*100, len(s.history)))
		most := prof.MostCommonType(s.history)
		center(lipgloss.NewStyle().Foreground(theme.Text),
			fmt.Sprintf("Most common type: %s (%s)", most, typetext.CombinationName(most)))
	}

	return b.String()
}
