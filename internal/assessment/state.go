package assessment

import (
	"time"

	"github.com/anand/fintype/internal/battery"
	"github.com/anand/fintype/internal/vgla"
)

// Status represents the lifecycle position of a test session.
type Status int

const (
	StatusNotStarted Status = iota // No questions served yet
	StatusInProgress               // Walking through the battery
	StatusCompleted                // Finalized with a result
)

// lastQuestionIndex is the 0-based index of the final question.
const lastQuestionIndex = vgla.QuestionCount - 1

// phaseBoundaryIndex is the 0-based index of the last like-phase question;
// answering it flips the session phase to dislike.
const phaseBoundaryIndex = vgla.LikeQuestionCount - 1

// Session walks a user through the fixed battery, recording one response
// per question and finalizing into a Result when the last question is
// answered. The session exclusively owns its in-flight responses until
// finalization.
type Session struct {
	// TestID is the UUID grouping this session's responses and snapshots.
	TestID string

	// Status is the current lifecycle state.
	Status Status

	// QuestionIndex is the 0-based position in the battery (0..59).
	QuestionIndex int

	// Phase flips from like to dislike exactly once, when the answer to
	// index 29 advances the session to index 30.
	Phase battery.Phase

	// StartTime is when Start was called.
	StartTime time.Time

	// LastUpdated is stamped on every recorded response.
	LastUpdated time.Time

	// Result is set on completion and never mutated afterwards.
	Result *vgla.Result

	// responses is keyed by question id; re-answering a question replaces
	// the earlier entry rather than appending.
	responses map[int]vgla.Response
}

// NewSession creates an unstarted session with a fresh test id.
func NewSession(testID string) *Session {
	return &Session{
		TestID:    testID,
		Status:    StatusNotStarted,
		Phase:     battery.PhaseLike,
		responses: make(map[int]vgla.Response),
	}
}

// ResponseCount returns the number of distinct questions answered so far.
func (s *Session) ResponseCount() int {
	return len(s.responses)
}

// ResponseFor returns the recorded response for a question, if any.
func (s *Session) ResponseFor(questionID int) (vgla.Response, bool) {
	r, ok := s.responses[questionID]
	return r, ok
}

// Responses returns all recorded responses sorted by question id.
func (s *Session) Responses() []vgla.Response {
	out := make([]vgla.Response, 0, len(s.responses))
	for id := 1; id <= vgla.QuestionCount; id++ {
		if r, ok := s.responses[id]; ok {
			out = append(out, r)
		}
	}
	return out
}
