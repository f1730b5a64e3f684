package profile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/anand/fintype/internal/store"
	"github.com/anand/fintype/internal/vgla"
)

// fakeRepos implements store.EventRepo and store.SnapshotRepo in memory.
type fakeRepos struct {
	assessments []store.AssessmentRecord
	snapshots   map[string][]store.Snapshot
	seq         int64
}

func newFakeRepos() *fakeRepos {
	return &fakeRepos{snapshots: map[string][]store.Snapshot{}}
}

func (f *fakeRepos) AppendResponse(context.Context, store.ResponseEventData) error { return nil }

func (f *fakeRepos) AppendAssessment(_ context.Context, data store.AssessmentEventData) error {
	f.seq++
	f.assessments = append(f.assessments, store.AssessmentRecord{
		Sequence:            f.seq,
		Timestamp:           time.Now(),
		AssessmentEventData: data,
	})
	return nil
}

func (f *fakeRepos) Assessments(context.Context) ([]store.AssessmentRecord, error) {
	return append([]store.AssessmentRecord(nil), f.assessments...), nil
}

func (f *fakeRepos) ResponsesForTest(context.Context, string) (int, error) { return 0, nil }

func (f *fakeRepos) Save(_ context.Context, kind string, raw json.RawMessage, at time.Time) error {
	f.seq++
	f.snapshots[kind] = append(f.snapshots[kind], store.Snapshot{
		Kind:      kind,
		Sequence:  f.seq,
		Timestamp: at,
		Raw:       append(json.RawMessage(nil), raw...),
	})
	return nil
}

func (f *fakeRepos) Latest(_ context.Context, kind string) (*store.Snapshot, error) {
	snaps := f.snapshots[kind]
	if len(snaps) == 0 {
		return nil, nil
	}
	latest := snaps[len(snaps)-1]
	return &latest, nil
}

func (f *fakeRepos) DeleteKind(_ context.Context, kind string) error {
	delete(f.snapshots, kind)
	return nil
}

func (f *fakeRepos) Prune(context.Context, string, int) error { return nil }

func TestTrackerFirstAssessment(t *testing.T) {
	repos := newFakeRepos()
	tracker := NewTracker(repos, repos)
	ctx := context.Background()

	p, err := tracker.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatal("expected no profile before the first assessment")
	}

	updated, err := tracker.Apply(ctx, nil, "test-1", resultWith(vgla.Vision, vgla.Goal, "VG"))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if updated.Combination != "VG" {
		t.Errorf("combination = %s, want VG", updated.Combination)
	}

	loaded, err := tracker.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded == nil || loaded.Combination != "VG" {
		t.Fatalf("reloaded profile = %+v, want VG", loaded)
	}

	history, err := tracker.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].TestID != "test-1" {
		t.Fatalf("history = %+v, want single test-1 record", history)
	}
	if history[0].Totals[vgla.Vision] != 12 {
		t.Errorf("totals did not survive persistence: %v", history[0].Totals)
	}
}

func TestTrackerRetakeUpdatesProfileAndHistory(t *testing.T) {
	repos := newFakeRepos()
	tracker := NewTracker(repos, repos)
	ctx := context.Background()

	first, err := tracker.Apply(ctx, nil, "test-1", resultWith(vgla.Vision, vgla.Goal, "VG"))
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}

	retake := resultWith(vgla.Logic, vgla.Action, "LA")
	retake.AnalysisDate = testNow.AddDate(0, 3, 0)
	second, err := tracker.Apply(ctx, first, "test-2", retake)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}

	if !second.HasTypeChanged || second.PreviousCombination != "VG" {
		t.Errorf("type change not tracked: %+v", second)
	}

	history, err := tracker.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if got := Stability(history); got != 0.5 {
		t.Errorf("stability = %v, want 0.5", got)
	}
}

func TestTrackerHistorySkipsUnparseableEvents(t *testing.T) {
	repos := newFakeRepos()
	tracker := NewTracker(repos, repos)
	ctx := context.Background()

	if _, err := tracker.Apply(ctx, nil, "test-1", resultWith(vgla.Vision, vgla.Goal, "VG")); err != nil {
		t.Fatalf("apply: %v", err)
	}
	repos.assessments = append(repos.assessments, store.AssessmentRecord{
		Sequence: 99,
		AssessmentEventData: store.AssessmentEventData{
			TestID: "bad", Primary: "chaos", Secondary: "goal",
			Combination: "VG", BlindSpot: "action",
		},
	})

	history, err := tracker.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history length = %d, want 1 (bad event skipped)", len(history))
	}
}

// failingSnapshotRepo rejects every save, leaving reads intact.
type failingSnapshotRepo struct {
	*fakeRepos
}

func (f *failingSnapshotRepo) Save(context.Context, string, json.RawMessage, time.Time) error {
	return errors.New("disk full")
}

func TestTrackerApplyWritesNoHistoryWhenProfileSaveFails(t *testing.T) {
	repos := newFakeRepos()
	tracker := NewTracker(repos, &failingSnapshotRepo{fakeRepos: repos})
	ctx := context.Background()

	if _, err := tracker.Apply(ctx, nil, "test-1", resultWith(vgla.Vision, vgla.Goal, "VG")); err == nil {
		t.Fatal("expected apply to fail when the profile snapshot cannot be saved")
	}

	history, err := tracker.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history length = %d, want 0 (no record without a saved profile)", len(history))
	}
}

func TestTrackerLoadDegradesOnCorruptSnapshot(t *testing.T) {
	repos := newFakeRepos()
	if err := repos.Save(context.Background(), store.KindProfile, json.RawMessage(`{"primary":"chaos"}`), testNow); err != nil {
		t.Fatalf("save: %v", err)
	}

	tracker := NewTracker(repos, repos)
	p, err := tracker.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Error("corrupt snapshot must read as no profile")
	}
}

func TestTrackerRefreshPersistsRetakeFlag(t *testing.T) {
	repos := newFakeRepos()
	tracker := NewTracker(repos, repos)
	ctx := context.Background()

	p, err := tracker.Apply(ctx, nil, "test-1", resultWith(vgla.Vision, vgla.Goal, "VG"))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Window not yet open: no flag, no extra snapshot.
	before := len(repos.snapshots[store.KindProfile])
	refreshed, err := tracker.Refresh(ctx, testNow.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.ShouldRetakeTest {
		t.Error("flag set before the retake window opened")
	}
	if len(repos.snapshots[store.KindProfile]) != before {
		t.Error("snapshot written with nothing to record")
	}

	refreshed, err = tracker.Refresh(ctx, p.NextTestDate)
	if err != nil {
		t.Fatalf("refresh at boundary: %v", err)
	}
	if !refreshed.ShouldRetakeTest {
		t.Error("flag not set at the retake boundary")
	}

	loaded, err := tracker.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !loaded.ShouldRetakeTest {
		t.Error("retake flag did not persist")
	}
}
