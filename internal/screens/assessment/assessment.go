package assessment

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	asmt "github.com/anand/fintype/internal/assessment"
	"github.com/anand/fintype/internal/battery"
	"github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/router"
	"github.com/anand/fintype/internal/screen"
	"github.com/anand/fintype/internal/screens/result"
	"github.com/anand/fintype/internal/store"
	"github.com/anand/fintype/internal/ui/components"
	"github.com/anand/fintype/internal/ui/layout"
	"github.com/anand/fintype/internal/vgla"
)

// AssessmentScreen runs the 60-question battery: 30 like-phase questions
// followed by 30 dislike-phase questions over the same scenarios.
type AssessmentScreen struct {
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	tracker   *profile.Tracker

	session *asmt.Session
	choice  components.Choice
	spin    components.Spinner

	resumed     bool
	confirmQuit bool
	finalizing  bool
	errMsg      string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen with injected dependencies.
func New(eventRepo store.EventRepo, snapRepo store.SnapshotRepo, tracker *profile.Tracker) *AssessmentScreen {
	return &AssessmentScreen{
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		tracker:   tracker,
		spin:      components.NewSpinner("Loading assessment..."),
	}
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return tea.Batch(s.loadSession(), s.spin.Init())
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave (progress saved)"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓/A-D", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
	}
	if s.session != nil && s.session.CanGoPrevious() {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Pause"})
	return hints
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case responseSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case assessmentDoneMsg:
		return s.handleDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.session == nil || s.finalizing {
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *AssessmentScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.session == nil || s.finalizing {
		return renderLoading(width, height, s.spin)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestion(width, height)
}

// loadSession resumes from the latest session snapshot or starts fresh.
// Stale or undecodable snapshots start a new session rather than failing.
func (s *AssessmentScreen) loadSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		stored, err := s.snapRepo.Latest(ctx, store.KindSession)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		if stored != nil {
			snap, err := asmt.DecodeSnapshot(stored.Raw)
			if err == nil && !snap.Stale(now) {
				if session, err := asmt.Resume(snap); err == nil {
					return sessionReadyMsg{Session: session, Resumed: true}
				}
			}
		}

		session := asmt.NewSession(uuid.New().String())
		if err := session.Start(now); err != nil {
			return sessionReadyMsg{Err: err}
		}
		return sessionReadyMsg{Session: session}
	}
}

func (s *AssessmentScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.session = msg.Session
	s.resumed = msg.Resumed
	s.rebuildChoice()
	return s, nil
}

func (s *AssessmentScreen) handleDone(msg assessmentDoneMsg) (screen.Screen, tea.Cmd) {
	s.finalizing = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: result.New(msg.Result, msg.Profile, msg.History),
		}
	}
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.session == nil || s.finalizing {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.confirmSelection()
	case "left", "h":
		if s.session.CanGoPrevious() {
			s.session.Previous()
			s.rebuildChoice()
		}
		return s, nil
	case "right", "l":
		// Forward only over questions that already have an answer.
		if s.session.CanGoNext() {
			if _, answered := s.session.ResponseFor(s.session.QuestionIndex + 1); answered {
				s.session.Next()
				s.rebuildChoice()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// confirmSelection records the highlighted option, persists progress, and
// finalizes the assessment on the last answer.
func (s *AssessmentScreen) confirmSelection() (screen.Screen, tea.Cmd) {
	question, err := s.session.CurrentQuestion()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	optionText := s.choice.SelectedOption()
	res, err := s.session.SelectOption(optionText, time.Now())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if res != nil {
		s.finalizing = true
		s.spin.Label = "Scoring your answers..."
		return s, tea.Batch(
			s.finalize(question, optionText, res),
			s.spin.Init(),
		)
	}

	s.resumed = false
	s.rebuildChoice()
	return s, s.persistProgress(question, optionText)
}

// persistProgress appends the response event and replaces the session
// snapshot so an interrupted session can resume. The snapshot and timestamp
// are captured here, on the update loop, because the returned command runs
// on another goroutine while the session keeps mutating.
func (s *AssessmentScreen) persistProgress(q battery.Question, optionText string) tea.Cmd {
	testID := s.session.TestID
	snap := s.session.Snapshot()
	at := s.session.LastUpdated
	return func() tea.Msg {
		ctx := context.Background()

		dim, err := battery.DimensionForOptionText(optionText)
		if err != nil {
			return responseSavedMsg{Err: err}
		}
		if err := s.eventRepo.AppendResponse(ctx, store.ResponseEventData{
			TestID:     testID,
			QuestionID: q.ID,
			Phase:      string(q.Phase),
			OptionText: optionText,
			Dimension:  string(dim),
		}); err != nil {
			return responseSavedMsg{Err: fmt.Errorf("save response: %w", err)}
		}

		raw, err := asmt.EncodeSnapshot(snap)
		if err != nil {
			return responseSavedMsg{Err: fmt.Errorf("encode session: %w", err)}
		}
		if err := s.snapRepo.Save(ctx, store.KindSession, raw, at); err != nil {
			return responseSavedMsg{Err: fmt.Errorf("save session: %w", err)}
		}
		// Only the latest session snapshot matters.
		if err := s.snapRepo.Prune(ctx, store.KindSession, 1); err != nil {
			return responseSavedMsg{Err: fmt.Errorf("prune session snapshots: %w", err)}
		}
		return responseSavedMsg{}
	}
}

// finalize records the last response, folds the result into the profile,
// and clears the session snapshot.
func (s *AssessmentScreen) finalize(q battery.Question, optionText string, res *vgla.Result) tea.Cmd {
	testID := s.session.TestID
	return func() tea.Msg {
		ctx := context.Background()

		dim, err := battery.DimensionForOptionText(optionText)
		if err != nil {
			return assessmentDoneMsg{Err: err}
		}
		if err := s.eventRepo.AppendResponse(ctx, store.ResponseEventData{
			TestID:     testID,
			QuestionID: q.ID,
			Phase:      string(q.Phase),
			OptionText: optionText,
			Dimension:  string(dim),
		}); err != nil {
			return assessmentDoneMsg{Err: fmt.Errorf("save response: %w", err)}
		}

		current, err := s.tracker.Load(ctx)
		if err != nil {
			return assessmentDoneMsg{Err: err}
		}
		updated, err := s.tracker.Apply(ctx, current, testID, res)
		if err != nil {
			return assessmentDoneMsg{Err: err}
		}

		if err := s.snapRepo.DeleteKind(ctx, store.KindSession); err != nil {
			return assessmentDoneMsg{Err: fmt.Errorf("clear session snapshot: %w", err)}
		}

		history, err := s.tracker.History(ctx)
		if err != nil {
			return assessmentDoneMsg{Err: err}
		}

		return assessmentDoneMsg{Result: res, Profile: updated, History: history}
	}
}

// rebuildChoice syncs the option selector with the current question,
// preselecting the recorded answer when revisiting.
func (s *AssessmentScreen) rebuildChoice() {
	question, err := s.session.CurrentQuestion()
	if err != nil {
		s.errMsg = err.Error()
		return
	}

	options := battery.Options()
	selected := 0
	if resp, ok := s.session.ResponseFor(question.ID); ok {
		for i, opt := range options {
			if opt == resp.OptionText {
				selected = i
				break
			}
		}
	}

	s.choice = components.NewChoice(question.Phase.Prompt(), options, selected)
}
