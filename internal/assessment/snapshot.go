package assessment

import (
	"fmt"
	"time"

	"github.com/anand/fintype/internal/battery"
	"github.com/anand/fintype/internal/vgla"
)

// MaxSnapshotAge is the staleness cutoff for resuming a saved session.
// Snapshots last touched before this window are treated as abandoned and
// ignored, replacing the reference app's ad hoc resume flags with an
// explicit max-age policy.
const MaxSnapshotAge = 14 * 24 * time.Hour

// Snapshot is the JSON-serializable form of an in-flight session, saved
// after every recorded response so progress survives restarts.
type Snapshot struct {
	TestID        string          `json:"test_id"`
	QuestionIndex int             `json:"question_index"`
	Phase         string          `json:"phase"`
	Responses     []vgla.Response `json:"responses"`
	StartTime     string          `json:"start_time"`
	LastUpdated   string          `json:"last_updated"`
}

// Snapshot exports the session's in-flight state. Responses are sorted by
// question id so snapshots of equal state are byte-identical when encoded.
func (s *Session) Snapshot() *Snapshot {
	return &Snapshot{
		TestID:        s.TestID,
		QuestionIndex: s.QuestionIndex,
		Phase:         string(s.Phase),
		Responses:     s.Responses(),
		StartTime:     s.StartTime.Format(time.RFC3339Nano),
		LastUpdated:   s.LastUpdated.Format(time.RFC3339Nano),
	}
}

// Resume restores a session from a snapshot without recomputation. It is
// idempotent: resuming the same snapshot twice yields identical sessions.
// A malformed snapshot returns an error; callers treat that as no prior
// progress rather than propagating a parse failure.
func Resume(snap *Snapshot) (*Session, error) {
	if snap == nil {
		return nil, fmt.Errorf("nil snapshot")
	}
	if snap.TestID == "" {
		return nil, fmt.Errorf("snapshot missing test id")
	}
	if snap.QuestionIndex < 0 || snap.QuestionIndex > lastQuestionIndex {
		return nil, fmt.Errorf("snapshot question index %d out of range", snap.QuestionIndex)
	}

	phase, err := battery.ParsePhase(snap.Phase)
	if err != nil {
		return nil, fmt.Errorf("snapshot phase: %w", err)
	}
	startTime, err := time.Parse(time.RFC3339Nano, snap.StartTime)
	if err != nil {
		return nil, fmt.Errorf("snapshot start time: %w", err)
	}
	lastUpdated, err := time.Parse(time.RFC3339Nano, snap.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("snapshot last updated: %w", err)
	}

	s := NewSession(snap.TestID)
	s.Status = StatusInProgress
	s.QuestionIndex = snap.QuestionIndex
	s.Phase = phase
	s.StartTime = startTime
	s.LastUpdated = lastUpdated

	for _, r := range snap.Responses {
		if r.QuestionID < 1 || r.QuestionID > vgla.QuestionCount {
			return nil, fmt.Errorf("snapshot response id %d out of range", r.QuestionID)
		}
		if _, err := vgla.ParseDimension(string(r.Dimension)); err != nil {
			return nil, fmt.Errorf("snapshot response %d: %w", r.QuestionID, err)
		}
		s.responses[r.QuestionID] = r
	}

	return s, nil
}

// Stale reports whether the snapshot is past the resume window at now.
func (sn *Snapshot) Stale(now time.Time) bool {
	lastUpdated, err := time.Parse(time.RFC3339Nano, sn.LastUpdated)
	if err != nil {
		return true
	}
	return now.Sub(lastUpdated) > MaxSnapshotAge
}
