package store

import (
	"context"
	"encoding/json"
	"time"
)

// Snapshot kinds. Session snapshots hold the in-flight test session and are
// replaced on every save; profile snapshots hold the tracked profile.
const (
	KindSession = "session"
	KindProfile = "profile"
)

// Snapshot is a point-in-time JSON capture of one kind of state.
type Snapshot struct {
	ID        int
	Kind      string
	Sequence  int64
	Timestamp time.Time
	Raw       json.RawMessage
}

// SnapshotRepo manages session and profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot of the given kind.
	Save(ctx context.Context, kind string, raw json.RawMessage, at time.Time) error

	// Latest returns the most recent snapshot of the given kind, or nil if
	// none exist. A row whose data cannot be re-encoded is reported as an
	// error; callers decide whether to degrade.
	Latest(ctx context.Context, kind string) (*Snapshot, error)

	// DeleteKind removes all snapshots of the given kind (e.g. clearing the
	// session snapshot once an assessment completes).
	DeleteKind(ctx context.Context, kind string) error

	// Prune deletes all but the N most recent snapshots of the given kind.
	Prune(ctx context.Context, kind string, keep int) error
}

// ResponseEventData captures one recorded answer, appended after every
// selection (the external progress save of the session contract).
type ResponseEventData struct {
	TestID     string
	QuestionID int
	Phase      string
	OptionText string
	Dimension  string
}

// AssessmentEventData captures one completed assessment: the immutable
// history record read back for stability and drift analysis.
type AssessmentEventData struct {
	TestID      string
	Primary     string
	Secondary   string
	Combination string
	BlindSpot   string
	Totals      map[string]int
}

// AssessmentRecord is a persisted assessment event with its global ordering.
type AssessmentRecord struct {
	Sequence  int64
	Timestamp time.Time
	AssessmentEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendResponse records a single answered question.
	AppendResponse(ctx context.Context, data ResponseEventData) error

	// AppendAssessment records a completed assessment. History records are
	// append-only; existing rows are never mutated.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// Assessments returns all assessment records ordered by sequence
	// ascending (oldest first).
	Assessments(ctx context.Context) ([]AssessmentRecord, error)

	// ResponsesForTest returns how many distinct questions have a recorded
	// response for the given test session.
	ResponsesForTest(ctx context.Context, testID string) (int, error)
}
