package result

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/router"
	"github.com/anand/fintype/internal/screen"
	"github.com/anand/fintype/internal/typetext"
	"github.com/anand/fintype/internal/ui/components"
	"github.com/anand/fintype/internal/ui/layout"
	"github.com/anand/fintype/internal/ui/theme"
	"github.com/anand/fintype/internal/vgla"
)

// ResultScreen displays a completed assessment: the combination type, the
// per-dimension score profile, and the blind spot.
type ResultScreen struct {
	result  *vgla.Result
	profile *profile.Profile
	history []profile.HistoryRecord
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a new ResultScreen.
func New(result *vgla.Result, prof *profile.Profile, history []profile.HistoryRecord) *ResultScreen {
	return &ResultScreen{result: result, profile: prof, history: history}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Your Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Assessment complete!"))
	b.WriteString("\n\n")

	// Combination type.
	typeLine := fmt.Sprintf("%s  ·  %s", res.Combination, typetext.CombinationName(res.Combination))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(typeLine))
	b.WriteString("\n")

	pairLine := fmt.Sprintf("Primary: %s    Secondary: %s",
		typetext.DimensionName(res.Primary), typetext.DimensionName(res.Secondary))
	if res.Combination.IsPure() {
		pairLine = fmt.Sprintf("Primary: %s (clearly dominant)", typetext.DimensionName(res.Primary))
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(pairLine))
	b.WriteString("\n\n")

	// Score bars divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Scores")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(renderScoreBars(res, width))
	b.WriteString("\n")

	// Blind spot.
	blindLine := fmt.Sprintf("Blind spot: %s — %s",
		typetext.DimensionName(res.BlindSpot), typetext.DimensionBlurb(res.BlindSpot))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Error).Render(blindLine)))
	b.WriteString("\n\n")

	// Longitudinal notes once there is history to compare against.
	if s.profile != nil && s.profile.HasTypeChanged {
		changeLine := fmt.Sprintf("Your type changed: %s → %s",
			s.profile.PreviousCombination, s.profile.Combination)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(changeLine)))
		b.WriteString("\n")
	}
	if len(s.history) > 1 {
		stabilityLine := fmt.Sprintf("Type stability across %d assessments: %.0f%%",
			len(s.history), profile.Stability(s.history)*100)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(stabilityLine)))
		b.WriteString("\n")
	}
	if s.profile != nil {
		nextLine := fmt.Sprintf("Next check-in: %s", s.profile.NextTestDate.Format("Jan 02, 2006"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(nextLine)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderScoreBars renders one bar per dimension in rank order. Totals range
// from -30 to +30; bars show the shifted value so a zero total sits midway.
func renderScoreBars(res *vgla.Result, width int) string {
	var b strings.Builder

	span := 2 * vgla.LikeQuestionCount
	for _, d := range res.Order {
		total := res.Scores.Total[d]
		percent := float64(total+vgla.LikeQuestionCount) / float64(span)

		bar := components.ProgressBar{
			Label:     fmt.Sprintf("%-6s %+3d", typetext.DimensionName(d), total),
			Percent:   percent,
			Width:     min(width-8, 50),
			FillColor: dimensionColor(d),
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func dimensionColor(d vgla.Dimension) color.Color {
	switch d {
	case vgla.Vision:
		return theme.Vision
	case vgla.Goal:
		return theme.Goal
	case vgla.Logic:
		return theme.Logic
	case vgla.Action:
		return theme.Action
	default:
		return theme.Secondary
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
