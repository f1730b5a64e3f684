package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	asmt "github.com/anand/fintype/internal/assessment"
	"github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/router"
	"github.com/anand/fintype/internal/screen"
	assessmentscreen "github.com/anand/fintype/internal/screens/assessment"
	"github.com/anand/fintype/internal/screens/history"
	profilescreen "github.com/anand/fintype/internal/screens/profile"
	"github.com/anand/fintype/internal/store"
	"github.com/anand/fintype/internal/typetext"
	"github.com/anand/fintype/internal/ui/components"
	"github.com/anand/fintype/internal/ui/theme"
)

// homeLoadedMsg carries the persisted state the menu is shaped from.
type homeLoadedMsg struct {
	Prof      *profile.Profile
	HasResume bool
	Assessed  int
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	tracker   *profile.Tracker

	menu      components.Menu
	prof      *profile.Profile
	hasResume bool
	retakeDue bool
	assessed  int
	loaded    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. State loads in Init, off the update loop.
func New(eventRepo store.EventRepo, snapRepo store.SnapshotRepo, tracker *profile.Tracker) *HomeScreen {
	return &HomeScreen{
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		tracker:   tracker,
	}
}

// Init loads the profile, any paused session, and the assessment count.
func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		var prof *profile.Profile
		if h.tracker != nil {
			prof, _ = h.tracker.Refresh(ctx, now)
		}

		hasResume := false
		if h.snapRepo != nil {
			if stored, err := h.snapRepo.Latest(ctx, store.KindSession); err == nil && stored != nil {
				if snap, err := asmt.DecodeSnapshot(stored.Raw); err == nil && !snap.Stale(now) {
					hasResume = true
				}
			}
		}

		assessed := 0
		if h.tracker != nil {
			if recs, err := h.tracker.History(ctx); err == nil {
				assessed = len(recs)
			}
		}

		return homeLoadedMsg{Prof: prof, HasResume: hasResume, Assessed: assessed}
	}
}

// Badge returns the current type code for the header.
func (h *HomeScreen) Badge() string {
	if h.prof == nil {
		return ""
	}
	return string(h.prof.Combination)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if loaded, ok := msg.(homeLoadedMsg); ok {
		h.prof = loaded.Prof
		h.hasResume = loaded.HasResume
		h.assessed = loaded.Assessed
		h.retakeDue = profile.CheckRetakeNeeded(loaded.Prof, time.Now())
		h.menu = components.NewMenu(h.menuItems())
		h.loaded = true
		return h, nil
	}

	if !h.loaded {
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// menuItems shapes the menu from the loaded state.
func (h *HomeScreen) menuItems() []components.MenuItem {
	assessLabel := "TAKE ASSESSMENT"
	if h.hasResume {
		assessLabel = "RESUME ASSESSMENT"
	} else if h.prof != nil {
		assessLabel = "RETAKE ASSESSMENT"
	}

	return []components.MenuItem{
		{Label: assessLabel, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessmentscreen.New(h.eventRepo, h.snapRepo, h.tracker),
				}
			}
		}},
		{Label: "MY PROFILE", Disabled: h.prof == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(h.tracker)}
			}
		}},
		{Label: "HISTORY", Disabled: h.assessed == 0, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.tracker)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) View(width, height int) string {
	if !h.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading..."))
	}

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("F I N T Y P E")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your money personality, measured")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStatusCard())
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStatusCard summarizes the profile and any pending notices.
func (h *HomeScreen) renderStatusCard() string {
	var lines []string

	if h.prof == nil {
		lines = append(lines, theme.Hint.Render("No assessment yet — take your first one!"))
	} else {
		typeLine := fmt.Sprintf("Type: %s  %s",
			h.prof.Combination, typetext.CombinationName(h.prof.Combination))
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(typeLine))
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("Last taken: %s   Assessments: %d",
				h.prof.LastTestDate.Format("Jan 02, 2006"), h.assessed)))
	}

	if h.hasResume {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Render(
			"▸ You have a paused assessment"))
	}
	if h.retakeDue {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render(
			"▸ It's been 3 months — time for a retake"))
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}
