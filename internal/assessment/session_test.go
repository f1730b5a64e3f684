package assessment

import (
	"errors"
	"testing"
	"time"

	"github.com/anand/fintype/internal/battery"
	"github.com/anand/fintype/internal/vgla"
)

var testNow = time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

func startedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession("test-session-id")
	if err := s.Start(testNow); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

// answerThrough answers questions with the given option text until the
// session's index reaches target (exclusive), or finalizes on the last one.
func answerThrough(t *testing.T, s *Session, option string, count int) *vgla.Result {
	t.Helper()
	var result *vgla.Result
	for i := 0; i < count; i++ {
		r, err := s.SelectOption(option, testNow.Add(time.Duration(i)*time.Second))
		if err != nil {
			t.Fatalf("select option at index %d: %v", s.QuestionIndex, err)
		}
		if r != nil {
			result = r
		}
	}
	return result
}

func TestStart_InitialState(t *testing.T) {
	s := NewSession("id")
	if s.Status != StatusNotStarted {
		t.Fatalf("status = %d, want NotStarted", s.Status)
	}

	if err := s.Start(testNow); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Status != StatusInProgress {
		t.Errorf("status = %d, want InProgress", s.Status)
	}
	if s.QuestionIndex != 0 {
		t.Errorf("question index = %d, want 0", s.QuestionIndex)
	}
	if s.Phase != battery.PhaseLike {
		t.Errorf("phase = %s, want like", s.Phase)
	}
	if s.ResponseCount() != 0 {
		t.Errorf("response count = %d, want 0", s.ResponseCount())
	}

	if err := s.Start(testNow); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second start: err = %v, want ErrAlreadyStarted", err)
	}
}

func TestSelectOption_RequiresStartedSession(t *testing.T) {
	s := NewSession("id")
	if _, err := s.SelectOption(battery.Options()[0], testNow); !errors.Is(err, ErrNotStarted) {
		t.Errorf("err = %v, want ErrNotStarted", err)
	}
}

func TestSelectOption_UnknownTextDoesNotMutate(t *testing.T) {
	s := startedSession(t)

	_, err := s.SelectOption("spend it all immediately", testNow)
	if !errors.Is(err, battery.ErrUnknownOption) {
		t.Fatalf("err = %v, want ErrUnknownOption", err)
	}
	if s.QuestionIndex != 0 {
		t.Errorf("question index mutated to %d on invalid option", s.QuestionIndex)
	}
	if s.ResponseCount() != 0 {
		t.Errorf("response recorded for invalid option")
	}
}

func TestSelectOption_AdvancesAndRecords(t *testing.T) {
	s := startedSession(t)
	options := battery.Options()

	if _, err := s.SelectOption(options[2], testNow); err != nil {
		t.Fatalf("select: %v", err)
	}

	if s.QuestionIndex != 1 {
		t.Errorf("question index = %d, want 1", s.QuestionIndex)
	}
	r, ok := s.ResponseFor(1)
	if !ok {
		t.Fatal("response for question 1 not recorded")
	}
	if r.OptionText != options[2] {
		t.Errorf("option text = %q, want %q", r.OptionText, options[2])
	}
	if r.Dimension != vgla.Logic {
		t.Errorf("dimension = %s, want logic (option index 2)", r.Dimension)
	}
}

func TestSelectOption_UpsertByQuestionID(t *testing.T) {
	s := startedSession(t)
	options := battery.Options()

	if _, err := s.SelectOption(options[0], testNow); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.Previous()
	if _, err := s.SelectOption(options[3], testNow.Add(time.Minute)); err != nil {
		t.Fatalf("re-select: %v", err)
	}

	if s.ResponseCount() != 1 {
		t.Fatalf("response count = %d, want 1 (upsert, not append)", s.ResponseCount())
	}
	r, _ := s.ResponseFor(1)
	if r.Dimension != vgla.Action {
		t.Errorf("dimension = %s, want action after re-selection", r.Dimension)
	}
}

func TestSelectOption_SameOptionTwiceIsIdempotent(t *testing.T) {
	option := battery.Options()[1]

	build := func() *Session {
		s := startedSession(t)
		if _, err := s.SelectOption(option, testNow); err != nil {
			t.Fatalf("select: %v", err)
		}
		return s
	}

	once := build()

	twice := build()
	twice.Previous()
	if _, err := twice.SelectOption(option, testNow); err != nil {
		t.Fatalf("re-select: %v", err)
	}

	if once.ResponseCount() != twice.ResponseCount() {
		t.Errorf("response counts differ: %d vs %d", once.ResponseCount(), twice.ResponseCount())
	}
	a, _ := once.ResponseFor(1)
	b, _ := twice.ResponseFor(1)
	if a != b {
		t.Errorf("responses differ: %+v vs %+v", a, b)
	}

	sa := vgla.Score(once.Responses())
	sb := vgla.Score(twice.Responses())
	for _, d := range vgla.AllDimensions() {
		if sa.Total[d] != sb.Total[d] {
			t.Errorf("Total[%s] differs: %d vs %d", d, sa.Total[d], sb.Total[d])
		}
	}
}

func TestPhaseTransition_ExactlyAtBoundary(t *testing.T) {
	s := startedSession(t)
	option := battery.Options()[0]

	answerThrough(t, s, option, 29)
	if s.Phase != battery.PhaseLike {
		t.Fatalf("phase = %s before boundary, want like", s.Phase)
	}
	if s.QuestionIndex != 29 {
		t.Fatalf("question index = %d, want 29", s.QuestionIndex)
	}

	// Answering index 29 flips the phase and advances to 30 in one call.
	if _, err := s.SelectOption(option, testNow); err != nil {
		t.Fatalf("select at boundary: %v", err)
	}
	if s.Phase != battery.PhaseDislike {
		t.Errorf("phase = %s after boundary, want dislike", s.Phase)
	}
	if s.QuestionIndex != 30 {
		t.Errorf("question index = %d, want 30", s.QuestionIndex)
	}

	// Navigating back across the boundary and re-answering must not flip again.
	s.Previous()
	if _, err := s.SelectOption(option, testNow); err != nil {
		t.Fatalf("re-select at boundary: %v", err)
	}
	if s.Phase != battery.PhaseDislike {
		t.Errorf("phase flipped twice; = %s, want dislike", s.Phase)
	}
}

func TestFinalize_FullBattery(t *testing.T) {
	s := startedSession(t)
	option := battery.Options()[0] // every answer selects Vision

	result := answerThrough(t, s, option, 60)
	if result == nil {
		t.Fatal("expected a result from the finalizing call")
	}
	if s.Status != StatusCompleted {
		t.Errorf("status = %d, want Completed", s.Status)
	}
	if s.Result != result {
		t.Error("session result not retained")
	}

	// 30 Vision likes, 30 Vision dislikes cancel to 0; ties resolve by
	// declaration order so Vision still ranks first.
	if result.Scores.Like[vgla.Vision] != 30 {
		t.Errorf("Like[Vision] = %d, want 30", result.Scores.Like[vgla.Vision])
	}
	if result.Scores.Dislike[vgla.Vision] != -30 {
		t.Errorf("Dislike[Vision] = %d, want -30", result.Scores.Dislike[vgla.Vision])
	}
	if result.Primary != vgla.Vision {
		t.Errorf("primary = %s, want vision", result.Primary)
	}

	if _, err := s.SelectOption(option, testNow); !errors.Is(err, ErrCompleted) {
		t.Errorf("select after completion: err = %v, want ErrCompleted", err)
	}
}

func TestFinalize_RejectsIncompleteResponses(t *testing.T) {
	s := startedSession(t)
	option := battery.Options()[0]

	// Jump to the last question without answering the rest.
	for s.CanGoNext() {
		s.Next()
	}
	if s.QuestionIndex != 59 {
		t.Fatalf("question index = %d, want 59", s.QuestionIndex)
	}

	_, err := s.SelectOption(option, testNow)
	if !errors.Is(err, ErrIncompleteResponses) {
		t.Fatalf("err = %v, want ErrIncompleteResponses", err)
	}
	if s.Status == StatusCompleted {
		t.Error("session completed despite incomplete responses")
	}
	// The final response itself is recorded; only finalization is refused.
	if _, ok := s.ResponseFor(60); !ok {
		t.Error("response for question 60 not recorded")
	}
}

func TestNavigation_Bounds(t *testing.T) {
	s := startedSession(t)

	if s.CanGoPrevious() {
		t.Error("CanGoPrevious true at index 0")
	}
	s.Previous() // no-op
	if s.QuestionIndex != 0 {
		t.Errorf("question index = %d after Previous at 0, want 0", s.QuestionIndex)
	}

	for s.CanGoNext() {
		s.Next()
	}
	if s.QuestionIndex != 59 {
		t.Errorf("question index = %d, want 59", s.QuestionIndex)
	}
	s.Next() // no-op
	if s.QuestionIndex != 59 {
		t.Errorf("question index = %d after Next at 59, want 59", s.QuestionIndex)
	}
	if !s.CanGoPrevious() {
		t.Error("CanGoPrevious false at index 59")
	}
}

func TestReset_DiscardsResponses(t *testing.T) {
	s := startedSession(t)
	answerThrough(t, s, battery.Options()[1], 10)

	s.Reset()

	if s.Status != StatusNotStarted {
		t.Errorf("status = %d, want NotStarted", s.Status)
	}
	if s.ResponseCount() != 0 {
		t.Errorf("response count = %d after reset, want 0", s.ResponseCount())
	}
	if s.Phase != battery.PhaseLike {
		t.Errorf("phase = %s after reset, want like", s.Phase)
	}
	if s.TestID != "test-session-id" {
		t.Errorf("test id changed on reset")
	}
}

func TestCurrentQuestion_TracksIndex(t *testing.T) {
	s := startedSession(t)
	answerThrough(t, s, battery.Options()[0], 3)

	q, err := s.CurrentQuestion()
	if err != nil {
		t.Fatalf("current question: %v", err)
	}
	if q.ID != 4 {
		t.Errorf("current question id = %d, want 4", q.ID)
	}
}
