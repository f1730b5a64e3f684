package assessment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	asmt "github.com/anand/fintype/internal/assessment"
	"github.com/anand/fintype/internal/battery"
	"github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/screen"
	"github.com/anand/fintype/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	responses   []store.ResponseEventData
	assessments []store.AssessmentEventData
}

func (m *mockEventRepo) AppendResponse(_ context.Context, data store.ResponseEventData) error {
	m.responses = append(m.responses, data)
	return nil
}

func (m *mockEventRepo) AppendAssessment(_ context.Context, data store.AssessmentEventData) error {
	m.assessments = append(m.assessments, data)
	return nil
}

func (m *mockEventRepo) Assessments(_ context.Context) ([]store.AssessmentRecord, error) {
	out := make([]store.AssessmentRecord, len(m.assessments))
	for i, a := range m.assessments {
		out[i] = store.AssessmentRecord{
			Sequence:            int64(i + 1),
			Timestamp:           time.Now(),
			AssessmentEventData: a,
		}
	}
	return out, nil
}

func (m *mockEventRepo) ResponsesForTest(_ context.Context, testID string) (int, error) {
	seen := make(map[int]bool)
	for _, r := range m.responses {
		if r.TestID == testID {
			seen[r.QuestionID] = true
		}
	}
	return len(seen), nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snaps map[string][]*store.Snapshot
}

func newMockSnapshotRepo() *mockSnapshotRepo {
	return &mockSnapshotRepo{snaps: make(map[string][]*store.Snapshot)}
}

func (m *mockSnapshotRepo) Save(_ context.Context, kind string, raw json.RawMessage, at time.Time) error {
	m.snaps[kind] = append(m.snaps[kind], &store.Snapshot{
		Kind:      kind,
		Timestamp: at,
		Raw:       raw,
	})
	return nil
}

func (m *mockSnapshotRepo) Latest(_ context.Context, kind string) (*store.Snapshot, error) {
	list := m.snaps[kind]
	if len(list) == 0 {
		return nil, nil
	}
	return list[len(list)-1], nil
}

func (m *mockSnapshotRepo) DeleteKind(_ context.Context, kind string) error {
	delete(m.snaps, kind)
	return nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, kind string, keep int) error {
	list := m.snaps[kind]
	if len(list) > keep {
		m.snaps[kind] = list[len(list)-keep:]
	}
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testAssessmentScreen() (*AssessmentScreen, *mockEventRepo, *mockSnapshotRepo) {
	eventRepo := &mockEventRepo{}
	snapRepo := newMockSnapshotRepo()
	tracker := profile.NewTracker(eventRepo, snapRepo)
	return New(eventRepo, snapRepo, tracker), eventRepo, snapRepo
}

// readySession starts a fresh session and feeds it to the screen.
func readySession(t *testing.T, s *AssessmentScreen) *asmt.Session {
	t.Helper()
	session := asmt.NewSession("test-id")
	if err := session.Start(time.Now()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Update(sessionReadyMsg{Session: session})
	return session
}

func TestAssessmentScreen_Title(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	if s.Title() != "Assessment" {
		t.Errorf("Title = %q, want %q", s.Title(), "Assessment")
	}
}

func TestAssessmentScreen_View_Loading(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestAssessmentScreen_View_Error(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	s.errMsg = "test error"
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestAssessmentScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	readySession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	as := scr.(*AssessmentScreen)
	if !as.confirmQuit {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = as.Update(keyPress('n'))
	as = scr.(*AssessmentScreen)
	if as.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestAssessmentScreen_QuitConfirm_Yes(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	readySession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestAssessmentScreen_ConfirmAdvancesAndPersists(t *testing.T) {
	s, eventRepo, snapRepo := testAssessmentScreen()
	session := readySession(t, s)

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a persist command after confirming an answer")
	}
	if session.QuestionIndex != 1 {
		t.Errorf("QuestionIndex = %d, want 1", session.QuestionIndex)
	}

	// Run the persist command and check the side effects.
	msg := cmd()
	saved, ok := msg.(responseSavedMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want responseSavedMsg", msg)
	}
	if saved.Err != nil {
		t.Fatalf("persist: %v", saved.Err)
	}
	if len(eventRepo.responses) != 1 {
		t.Fatalf("response events = %d, want 1", len(eventRepo.responses))
	}
	if eventRepo.responses[0].QuestionID != 1 {
		t.Errorf("QuestionID = %d, want 1", eventRepo.responses[0].QuestionID)
	}
	if len(snapRepo.snaps[store.KindSession]) != 1 {
		t.Errorf("session snapshots = %d, want 1", len(snapRepo.snaps[store.KindSession]))
	}
}

func TestAssessmentScreen_PersistCapturesSnapshotBeforeCommandRuns(t *testing.T) {
	s, _, snapRepo := testAssessmentScreen()
	readySession(t, s)

	// Confirm the first answer, then the second before the first save
	// command has run. The command executes off the update loop, so it
	// must hold its own copy of the session state, not the live session.
	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr.Update(specialKey(tea.KeyEnter))

	msg := cmd()
	saved, ok := msg.(responseSavedMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want responseSavedMsg", msg)
	}
	if saved.Err != nil {
		t.Fatalf("persist: %v", saved.Err)
	}

	stored, err := snapRepo.Latest(context.Background(), store.KindSession)
	if err != nil || stored == nil {
		t.Fatalf("Latest: %v, %v", stored, err)
	}
	snap, err := asmt.DecodeSnapshot(stored.Raw)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if len(snap.Responses) != 1 {
		t.Errorf("snapshot responses = %d, want 1 (state at capture time)", len(snap.Responses))
	}
	if snap.QuestionIndex != 1 {
		t.Errorf("snapshot question index = %d, want 1", snap.QuestionIndex)
	}
}

func TestAssessmentScreen_ForwardBlockedAtFrontier(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	session := readySession(t, s)

	// No answer recorded for question 1, so right must not move.
	var scr screen.Screen = s
	scr.Update(specialKey(tea.KeyRight))
	if session.QuestionIndex != 0 {
		t.Errorf("QuestionIndex = %d, want 0", session.QuestionIndex)
	}
}

func TestAssessmentScreen_BackPreselectsAnswer(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	session := readySession(t, s)

	options := battery.Options()

	// Answer question 1 with option C then go back.
	var scr screen.Screen = s
	scr.Update(keyPress('c'))
	scr.Update(specialKey(tea.KeyEnter))
	scr.Update(specialKey(tea.KeyLeft))

	if session.QuestionIndex != 0 {
		t.Fatalf("QuestionIndex = %d, want 0", session.QuestionIndex)
	}
	if got := s.choice.SelectedOption(); got != options[2] {
		t.Errorf("preselected option = %q, want %q", got, options[2])
	}
}

func TestAssessmentScreen_FinalAnswerFinalizes(t *testing.T) {
	s, eventRepo, snapRepo := testAssessmentScreen()

	// Answer everything but the last question directly on the session.
	session := asmt.NewSession("test-id")
	now := time.Now()
	if err := session.Start(now); err != nil {
		t.Fatalf("Start: %v", err)
	}
	options := battery.Options()
	for i := 0; i < 59; i++ {
		if _, err := session.SelectOption(options[i%len(options)], now); err != nil {
			t.Fatalf("SelectOption %d: %v", i, err)
		}
	}
	s.Update(sessionReadyMsg{Session: session})

	// Simulate a stored in-flight snapshot that completion must clear.
	raw, err := asmt.EncodeSnapshot(session.Snapshot())
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	if err := snapRepo.Save(context.Background(), store.KindSession, raw, now); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if !s.finalizing {
		t.Error("expected finalizing state after the last answer")
	}
	if cmd == nil {
		t.Fatal("expected a finalize command after the last answer")
	}

	msg := findMsg[assessmentDoneMsg](t, cmd)
	if msg.Err != nil {
		t.Fatalf("finalize: %v", msg.Err)
	}
	if msg.Result == nil {
		t.Fatal("expected a result")
	}
	if msg.Profile == nil {
		t.Fatal("expected a profile")
	}
	if len(msg.History) != 1 {
		t.Errorf("history records = %d, want 1", len(msg.History))
	}
	if len(eventRepo.assessments) != 1 {
		t.Errorf("assessment events = %d, want 1", len(eventRepo.assessments))
	}
	if len(snapRepo.snaps[store.KindSession]) != 0 {
		t.Errorf("session snapshots = %d, want 0 after completion", len(snapRepo.snaps[store.KindSession]))
	}
	if len(snapRepo.snaps[store.KindProfile]) != 1 {
		t.Errorf("profile snapshots = %d, want 1", len(snapRepo.snaps[store.KindProfile]))
	}
}

func TestAssessmentScreen_ResumeFromSnapshot(t *testing.T) {
	s, _, snapRepo := testAssessmentScreen()

	session := asmt.NewSession("resume-id")
	now := time.Now()
	if err := session.Start(now); err != nil {
		t.Fatalf("Start: %v", err)
	}
	options := battery.Options()
	for i := 0; i < 5; i++ {
		if _, err := session.SelectOption(options[0], now); err != nil {
			t.Fatalf("SelectOption %d: %v", i, err)
		}
	}
	raw, err := asmt.EncodeSnapshot(session.Snapshot())
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	if err := snapRepo.Save(context.Background(), store.KindSession, raw, now); err != nil {
		t.Fatalf("Save: %v", err)
	}

	msg := s.loadSession()()
	ready, ok := msg.(sessionReadyMsg)
	if !ok {
		t.Fatalf("loadSession returned %T, want sessionReadyMsg", msg)
	}
	if !ready.Resumed {
		t.Error("expected resumed session")
	}
	if ready.Session.TestID != "resume-id" {
		t.Errorf("TestID = %q, want %q", ready.Session.TestID, "resume-id")
	}
	if ready.Session.ResponseCount() != 5 {
		t.Errorf("ResponseCount = %d, want 5", ready.Session.ResponseCount())
	}
}

func TestAssessmentScreen_KeyHints(t *testing.T) {
	s, _, _ := testAssessmentScreen()
	readySession(t, s)

	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

// findMsg runs a command, unwrapping batches, until a message of type T
// is produced.
func findMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if m, ok := msg.(T); ok {
			return m
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
		}
	}
	var zero T
	t.Fatalf("no %T produced", zero)
	return zero
}
