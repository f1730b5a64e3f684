package assessment

import (
	"bytes"
	"testing"
	"time"

	"github.com/anand/fintype/internal/battery"
	"github.com/anand/fintype/internal/vgla"
)

func midSession(t *testing.T) *Session {
	t.Helper()
	s := startedSession(t)
	options := battery.Options()
	for i := 0; i < 35; i++ {
		if _, err := s.SelectOption(options[i%4], testNow.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("select at %d: %v", i, err)
		}
	}
	return s
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := midSession(t)
	snap := s.Snapshot()

	restored, err := Resume(snap)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}

	// Re-serializing the restored session must reproduce the snapshot.
	again := restored.Snapshot()

	first, err := EncodeSnapshot(snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := EncodeSnapshot(again)
	if err != nil {
		t.Fatalf("encode restored: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("round trip not byte-identical:\n  %s\n  %s", first, second)
	}

	if restored.QuestionIndex != s.QuestionIndex {
		t.Errorf("question index = %d, want %d", restored.QuestionIndex, s.QuestionIndex)
	}
	if restored.Phase != s.Phase {
		t.Errorf("phase = %s, want %s", restored.Phase, s.Phase)
	}
	if restored.ResponseCount() != s.ResponseCount() {
		t.Errorf("response count = %d, want %d", restored.ResponseCount(), s.ResponseCount())
	}
}

func TestResume_Idempotent(t *testing.T) {
	snap := midSession(t).Snapshot()

	first, err := Resume(snap)
	if err != nil {
		t.Fatalf("first resume: %v", err)
	}
	second, err := Resume(snap)
	if err != nil {
		t.Fatalf("second resume: %v", err)
	}

	a, _ := EncodeSnapshot(first.Snapshot())
	b, _ := EncodeSnapshot(second.Snapshot())
	if !bytes.Equal(a, b) {
		t.Error("resuming the same snapshot twice produced different state")
	}

	// Behavior after resume matches too: the next SelectOption advances both
	// sessions identically.
	option := battery.Options()[0]
	if _, err := first.SelectOption(option, testNow); err != nil {
		t.Fatalf("select on first: %v", err)
	}
	if _, err := second.SelectOption(option, testNow); err != nil {
		t.Fatalf("select on second: %v", err)
	}
	a, _ = EncodeSnapshot(first.Snapshot())
	b, _ = EncodeSnapshot(second.Snapshot())
	if !bytes.Equal(a, b) {
		t.Error("behavior diverged after identical resume")
	}
}

func TestResume_RejectsMalformed(t *testing.T) {
	base := midSession(t).Snapshot()

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"missing test id", func(s *Snapshot) { s.TestID = "" }},
		{"index out of range", func(s *Snapshot) { s.QuestionIndex = 60 }},
		{"negative index", func(s *Snapshot) { s.QuestionIndex = -1 }},
		{"bad phase", func(s *Snapshot) { s.Phase = "neutral" }},
		{"bad start time", func(s *Snapshot) { s.StartTime = "yesterday" }},
		{"bad last updated", func(s *Snapshot) { s.LastUpdated = "" }},
		{"response id out of range", func(s *Snapshot) { s.Responses[0].QuestionID = 61 }},
		{"bad response dimension", func(s *Snapshot) { s.Responses[0].Dimension = "charisma" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := *base
			snap.Responses = append([]vgla.Response(nil), base.Responses...)
			tt.mutate(&snap)
			if _, err := Resume(&snap); err == nil {
				t.Error("expected resume to reject malformed snapshot")
			}
		})
	}

	if _, err := Resume(nil); err == nil {
		t.Error("expected resume to reject nil snapshot")
	}
}

func TestDecodeSnapshot_GracefulOnCorruptJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", "{{{"},
		{"wrong shape", `{"test_id": 42}`},
		{"phase outside enum", `{"test_id":"x","question_index":0,"phase":"maybe","responses":[],"start_time":"t","last_updated":"t"}`},
		{"index above range", `{"test_id":"x","question_index":99,"phase":"like","responses":[],"start_time":"t","last_updated":"t"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSnapshot([]byte(tt.raw)); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}

func TestDecodeSnapshot_AcceptsOwnEncoding(t *testing.T) {
	snap := midSession(t).Snapshot()
	raw, err := EncodeSnapshot(snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.TestID != snap.TestID || decoded.QuestionIndex != snap.QuestionIndex {
		t.Errorf("decoded snapshot diverges: %+v", decoded)
	}
}

func TestSnapshot_Stale(t *testing.T) {
	snap := midSession(t).Snapshot()

	fresh := testNow.Add(time.Hour)
	if snap.Stale(fresh) {
		t.Error("snapshot stale one hour after last update")
	}

	old := testNow.Add(MaxSnapshotAge + 25*time.Hour)
	if !snap.Stale(old) {
		t.Error("snapshot not stale past the max age window")
	}

	corrupt := &Snapshot{LastUpdated: "not-a-time"}
	if !corrupt.Stale(testNow) {
		t.Error("unparseable snapshot should read as stale")
	}
}
