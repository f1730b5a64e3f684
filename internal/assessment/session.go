package assessment

import (
	"errors"
	"fmt"
	"time"

	"github.com/anand/fintype/internal/battery"
	"github.com/anand/fintype/internal/vgla"
)

var (
	// ErrNotStarted reports an operation that requires an in-progress session.
	ErrNotStarted = errors.New("session not started")

	// ErrAlreadyStarted reports Start on a session that already left NotStarted.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrCompleted reports a mutation attempted after finalization.
	ErrCompleted = errors.New("session already completed")

	// ErrIncompleteResponses reports finalization with fewer than 60 recorded
	// responses. Finalizing a partial set is rejected rather than scored.
	ErrIncompleteResponses = errors.New("cannot finalize with incomplete responses")
)

// Start transitions NotStarted -> InProgress at the first question.
func (s *Session) Start(now time.Time) error {
	if s.Status != StatusNotStarted {
		return ErrAlreadyStarted
	}
	s.Status = StatusInProgress
	s.QuestionIndex = 0
	s.Phase = battery.PhaseLike
	s.StartTime = now
	s.LastUpdated = now
	return nil
}

// CurrentQuestion returns the question at the session's current index.
func (s *Session) CurrentQuestion() (battery.Question, error) {
	if s.Status != StatusInProgress {
		return battery.Question{}, ErrNotStarted
	}
	return battery.QuestionByID(s.QuestionIndex + 1)
}

// SelectOption records the given canonical option for the current question,
// advances the session, and finalizes it when the last question is answered.
// The returned Result is non-nil only on the finalizing call.
//
// State is mutated only after the option text has been validated, so an
// invalid argument never leaves a partial transition behind. Re-selecting
// for an already-answered question replaces the earlier response.
func (s *Session) SelectOption(optionText string, now time.Time) (*vgla.Result, error) {
	switch s.Status {
	case StatusNotStarted:
		return nil, ErrNotStarted
	case StatusCompleted:
		return nil, ErrCompleted
	}

	dimension, err := battery.DimensionForOptionText(optionText)
	if err != nil {
		return nil, err
	}

	questionID := s.QuestionIndex + 1
	s.responses[questionID] = vgla.Response{
		QuestionID: questionID,
		OptionText: optionText,
		Dimension:  dimension,
		Timestamp:  now,
	}
	s.LastUpdated = now

	// Finalizing call: last question answered.
	if s.QuestionIndex == lastQuestionIndex {
		return s.finalize(now)
	}

	// The phase flips exactly once, when the answer to the last like-phase
	// question carries the session across the boundary.
	if s.QuestionIndex == phaseBoundaryIndex && s.Phase == battery.PhaseLike {
		s.Phase = battery.PhaseDislike
	}
	s.QuestionIndex++
	return nil, nil
}

// finalize scores the full response set and transitions to Completed.
func (s *Session) finalize(now time.Time) (*vgla.Result, error) {
	if len(s.responses) < vgla.QuestionCount {
		return nil, fmt.Errorf("%w: have %d of %d", ErrIncompleteResponses, len(s.responses), vgla.QuestionCount)
	}
	s.Result = vgla.NewResult(s.Responses(), now)
	s.Status = StatusCompleted
	return s.Result, nil
}

// Next advances the question index by one. No-op at the last question.
func (s *Session) Next() {
	if s.Status == StatusInProgress && s.QuestionIndex < lastQuestionIndex {
		s.QuestionIndex++
	}
}

// Previous moves the question index back by one. No-op at the first question.
func (s *Session) Previous() {
	if s.Status == StatusInProgress && s.QuestionIndex > 0 {
		s.QuestionIndex--
	}
}

// CanGoNext reports whether Next would move.
func (s *Session) CanGoNext() bool {
	return s.Status == StatusInProgress && s.QuestionIndex < lastQuestionIndex
}

// CanGoPrevious reports whether Previous would move.
func (s *Session) CanGoPrevious() bool {
	return s.Status == StatusInProgress && s.QuestionIndex > 0
}

// Reset returns the session to NotStarted, discarding all responses and
// any result. The test id is retained.
func (s *Session) Reset() {
	s.Status = StatusNotStarted
	s.QuestionIndex = 0
	s.Phase = battery.PhaseLike
	s.Result = nil
	s.responses = make(map[int]vgla.Response)
}
