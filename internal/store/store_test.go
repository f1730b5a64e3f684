package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "fintype-test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatestByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, KindSession)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot on empty store")
	}

	first := json.RawMessage(`{"test_id":"a","question_index":3}`)
	second := json.RawMessage(`{"test_id":"a","question_index":7}`)
	profile := json.RawMessage(`{"combination":"VG"}`)

	now := time.Now()
	if err := repo.Save(ctx, KindSession, first, now); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := repo.Save(ctx, KindSession, second, now.Add(time.Second)); err != nil {
		t.Fatalf("save second: %v", err)
	}
	if err := repo.Save(ctx, KindProfile, profile, now.Add(2*time.Second)); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	got, err := repo.Latest(ctx, KindSession)
	if err != nil {
		t.Fatalf("latest session: %v", err)
	}
	if got == nil {
		t.Fatal("expected a session snapshot")
	}
	var decoded struct {
		QuestionIndex int `json:"question_index"`
	}
	if err := json.Unmarshal(got.Raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.QuestionIndex != 7 {
		t.Errorf("latest session question_index = %d, want 7", decoded.QuestionIndex)
	}

	// Kinds are isolated.
	gotProfile, err := repo.Latest(ctx, KindProfile)
	if err != nil {
		t.Fatalf("latest profile: %v", err)
	}
	if gotProfile == nil || gotProfile.Kind != KindProfile {
		t.Fatalf("expected a profile snapshot, got %+v", gotProfile)
	}
}

func TestSnapshotDeleteKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now()
	if err := repo.Save(ctx, KindSession, json.RawMessage(`{"a":1}`), now); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, KindProfile, json.RawMessage(`{"b":2}`), now); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.DeleteKind(ctx, KindSession); err != nil {
		t.Fatalf("delete kind: %v", err)
	}

	snap, err := repo.Latest(ctx, KindSession)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Error("session snapshot survived DeleteKind")
	}

	profile, err := repo.Latest(ctx, KindProfile)
	if err != nil {
		t.Fatalf("latest profile: %v", err)
	}
	if profile == nil {
		t.Error("profile snapshot deleted by session DeleteKind")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 5; i++ {
		raw := json.RawMessage(`{"n":` + string(rune('0'+i)) + `}`)
		if err := repo.Save(ctx, KindSession, raw, now.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, KindSession, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshot count after prune = %d, want 2", count)
	}

	// Latest must still be the newest one.
	got, err := repo.Latest(ctx, KindSession)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	var decoded struct {
		N int `json:"n"`
	}
	if err := json.Unmarshal(got.Raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.N != 4 {
		t.Errorf("latest after prune n = %d, want 4", decoded.N)
	}
}

func TestResponseEvents_DistinctCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	record := func(testID string, questionID int) {
		t.Helper()
		err := repo.AppendResponse(ctx, ResponseEventData{
			TestID:     testID,
			QuestionID: questionID,
			Phase:      "like",
			OptionText: "Run the numbers and compare before deciding",
			Dimension:  "logic",
		})
		if err != nil {
			t.Fatalf("append response: %v", err)
		}
	}

	record("t1", 1)
	record("t1", 2)
	record("t1", 2) // re-answered; must not double count
	record("t2", 1)

	count, err := repo.ResponsesForTest(ctx, "t1")
	if err != nil {
		t.Fatalf("responses for test: %v", err)
	}
	if count != 2 {
		t.Errorf("distinct responses = %d, want 2", count)
	}
}

func TestAssessmentEvents_AppendAndQueryOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, combo := range []string{"VG", "VV", "LA"} {
		err := repo.AppendAssessment(ctx, AssessmentEventData{
			TestID:      "test-" + combo,
			Primary:     "vision",
			Secondary:   "goal",
			Combination: combo,
			BlindSpot:   "action",
			Totals:      map[string]int{"vision": 10, "goal": 8, "logic": 0, "action": -18},
		})
		if err != nil {
			t.Fatalf("append assessment %s: %v", combo, err)
		}
	}

	records, err := repo.Assessments(ctx)
	if err != nil {
		t.Fatalf("assessments: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	want := []string{"VG", "VV", "LA"}
	for i, r := range records {
		if r.Combination != want[i] {
			t.Errorf("record %d combination = %s, want %s (sequence order)", i, r.Combination, want[i])
		}
	}
	if records[0].Sequence >= records[1].Sequence {
		t.Error("sequences not strictly increasing")
	}
	if records[0].Totals["vision"] != 10 {
		t.Errorf("totals round trip failed: %v", records[0].Totals)
	}
}

func TestWipe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.EventRepo().AppendAssessment(ctx, AssessmentEventData{
		TestID: "t", Primary: "vision", Secondary: "goal",
		Combination: "VG", BlindSpot: "action", Totals: map[string]int{},
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.SnapshotRepo().Save(ctx, KindProfile, json.RawMessage(`{}`), time.Now()); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	if err := s.Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	records, err := s.EventRepo().Assessments(ctx)
	if err != nil {
		t.Fatalf("assessments: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("assessments survived wipe: %d", len(records))
	}
	snap, err := s.SnapshotRepo().Latest(ctx, KindProfile)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Error("snapshot survived wipe")
	}
}
