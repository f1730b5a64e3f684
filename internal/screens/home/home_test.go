package home

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	asmt "github.com/anand/fintype/internal/assessment"
	"github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/store"
	"github.com/anand/fintype/internal/vgla"
)

// fakeStore implements store.EventRepo and store.SnapshotRepo in memory.
type fakeStore struct {
	assessments []store.AssessmentRecord
	snapshots   map[string][]store.Snapshot
	seq         int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{snapshots: map[string][]store.Snapshot{}}
}

func (f *fakeStore) AppendResponse(context.Context, store.ResponseEventData) error { return nil }

func (f *fakeStore) AppendAssessment(_ context.Context, data store.AssessmentEventData) error {
	f.seq++
	f.assessments = append(f.assessments, store.AssessmentRecord{
		Sequence:            f.seq,
		Timestamp:           time.Now(),
		AssessmentEventData: data,
	})
	return nil
}

func (f *fakeStore) Assessments(context.Context) ([]store.AssessmentRecord, error) {
	return append([]store.AssessmentRecord(nil), f.assessments...), nil
}

func (f *fakeStore) ResponsesForTest(context.Context, string) (int, error) { return 0, nil }

func (f *fakeStore) Save(_ context.Context, kind string, raw json.RawMessage, at time.Time) error {
	f.seq++
	f.snapshots[kind] = append(f.snapshots[kind], store.Snapshot{
		Kind:      kind,
		Sequence:  f.seq,
		Timestamp: at,
		Raw:       append(json.RawMessage(nil), raw...),
	})
	return nil
}

func (f *fakeStore) Latest(_ context.Context, kind string) (*store.Snapshot, error) {
	snaps := f.snapshots[kind]
	if len(snaps) == 0 {
		return nil, nil
	}
	latest := snaps[len(snaps)-1]
	return &latest, nil
}

func (f *fakeStore) DeleteKind(_ context.Context, kind string) error {
	delete(f.snapshots, kind)
	return nil
}

func (f *fakeStore) Prune(context.Context, string, int) error { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func completedResult(combo vgla.Combination, at time.Time) *vgla.Result {
	return &vgla.Result{
		Scores: vgla.ScoreVector{
			Total: map[vgla.Dimension]int{
				vgla.Vision: 10, vgla.Goal: 4, vgla.Logic: -2, vgla.Action: -12,
			},
		},
		Primary:      vgla.Vision,
		Secondary:    vgla.Goal,
		Combination:  combo,
		BlindSpot:    vgla.Action,
		AnalysisDate: at,
	}
}

// loadedHome builds the screen, runs the Init command, and feeds the
// resulting message back through Update.
func loadedHome(t *testing.T, fs *fakeStore) *HomeScreen {
	t.Helper()
	h := New(fs, fs, profile.NewTracker(fs, fs))
	cmd := h.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	msg := cmd()
	if _, ok := msg.(homeLoadedMsg); !ok {
		t.Fatalf("Init command returned %T, want homeLoadedMsg", msg)
	}
	scr, _ := h.Update(msg)
	return scr.(*HomeScreen)
}

func menuLabels(h *HomeScreen) []string {
	labels := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
	}
	return labels
}

func itemDisabled(t *testing.T, h *HomeScreen, label string) bool {
	t.Helper()
	for _, item := range h.menu.Items {
		if item.Label == label {
			return item.Disabled
		}
	}
	t.Fatalf("no menu item %q in %v", label, menuLabels(h))
	return false
}

func TestHomeScreenFirstRun(t *testing.T) {
	h := loadedHome(t, newFakeStore())

	if got := menuLabels(h)[0]; got != "TAKE ASSESSMENT" {
		t.Errorf("first item = %q, want TAKE ASSESSMENT", got)
	}
	if !itemDisabled(t, h, "MY PROFILE") {
		t.Error("MY PROFILE enabled without a profile")
	}
	if !itemDisabled(t, h, "HISTORY") {
		t.Error("HISTORY enabled without assessments")
	}
	if h.Badge() != "" {
		t.Errorf("badge = %q, want empty before the first assessment", h.Badge())
	}
}

func TestHomeScreenLoadsNothingBeforeInitCommandRuns(t *testing.T) {
	fs := newFakeStore()
	h := New(fs, fs, profile.NewTracker(fs, fs))

	if got := h.View(80, 24); !strings.Contains(got, "Loading") {
		t.Errorf("view before load = %q, want loading notice", got)
	}
	if h.Badge() != "" {
		t.Errorf("badge before load = %q, want empty", h.Badge())
	}
	// Keypresses before the state arrives are ignored, not a panic.
	if _, cmd := h.Update(keyPress('j')); cmd != nil {
		t.Error("keypress before load produced a command")
	}
}

func TestHomeScreenAfterAssessment(t *testing.T) {
	fs := newFakeStore()
	tracker := profile.NewTracker(fs, fs)
	if _, err := tracker.Apply(context.Background(), nil, "test-1",
		completedResult("VG", time.Now())); err != nil {
		t.Fatalf("apply: %v", err)
	}

	h := loadedHome(t, fs)

	if got := menuLabels(h)[0]; got != "RETAKE ASSESSMENT" {
		t.Errorf("first item = %q, want RETAKE ASSESSMENT", got)
	}
	if itemDisabled(t, h, "MY PROFILE") {
		t.Error("MY PROFILE disabled with a profile present")
	}
	if itemDisabled(t, h, "HISTORY") {
		t.Error("HISTORY disabled with one assessment recorded")
	}
	if h.Badge() != "VG" {
		t.Errorf("badge = %q, want VG", h.Badge())
	}
}

func TestHomeScreenOffersResumeForFreshSession(t *testing.T) {
	fs := newFakeStore()
	session := asmt.NewSession("test-resume")
	if err := session.Start(time.Now()); err != nil {
		t.Fatalf("start: %v", err)
	}
	raw, err := asmt.EncodeSnapshot(session.Snapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := fs.Save(context.Background(), store.KindSession, raw, time.Now()); err != nil {
		t.Fatalf("save: %v", err)
	}

	h := loadedHome(t, fs)

	if got := menuLabels(h)[0]; got != "RESUME ASSESSMENT" {
		t.Errorf("first item = %q, want RESUME ASSESSMENT", got)
	}
	if got := h.View(80, 24); !strings.Contains(got, "paused assessment") {
		t.Error("view missing the paused-assessment notice")
	}
}

func TestHomeScreenIgnoresStaleSession(t *testing.T) {
	fs := newFakeStore()
	old := time.Now().Add(-asmt.MaxSnapshotAge - time.Hour)
	session := asmt.NewSession("test-stale")
	if err := session.Start(old); err != nil {
		t.Fatalf("start: %v", err)
	}
	raw, err := asmt.EncodeSnapshot(session.Snapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := fs.Save(context.Background(), store.KindSession, raw, old); err != nil {
		t.Fatalf("save: %v", err)
	}

	h := loadedHome(t, fs)

	if got := menuLabels(h)[0]; got != "TAKE ASSESSMENT" {
		t.Errorf("first item = %q, want TAKE ASSESSMENT for a stale session", got)
	}
}

func TestHomeScreenRetakeNotice(t *testing.T) {
	fs := newFakeStore()
	tracker := profile.NewTracker(fs, fs)
	fourMonthsAgo := time.Now().AddDate(0, -4, 0)
	if _, err := tracker.Apply(context.Background(), nil, "test-1",
		completedResult("VG", fourMonthsAgo)); err != nil {
		t.Fatalf("apply: %v", err)
	}

	h := loadedHome(t, fs)

	if !h.retakeDue {
		t.Fatal("retake window open but not flagged")
	}
	if got := h.View(80, 24); !strings.Contains(got, "time for a retake") {
		t.Error("view missing the retake notice")
	}
}
