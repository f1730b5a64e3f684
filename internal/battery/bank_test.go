package battery

import (
	"testing"

	"github.com/anand/fintype/internal/vgla"
)

func TestQuestions_FixedBattery(t *testing.T) {
	questions := Questions()

	if len(questions) != 60 {
		t.Fatalf("got %d questions, want 60", len(questions))
	}

	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("question at index %d has id %d, want %d", i, q.ID, i+1)
		}
		wantPhase := PhaseLike
		if q.ID > 30 {
			wantPhase = PhaseDislike
		}
		if q.Phase != wantPhase {
			t.Errorf("question %d phase = %s, want %s", q.ID, q.Phase, wantPhase)
		}
	}
}

func TestQuestions_DimensionCycle(t *testing.T) {
	dims := vgla.AllDimensions()
	for _, q := range Questions() {
		scenario := (q.ID - 1) % 30
		want := dims[scenario%4]
		if q.Dimension != want {
			t.Errorf("question %d dimension = %s, want %s", q.ID, q.Dimension, want)
		}
	}
}

func TestQuestions_PhasesShareScenarioPrompts(t *testing.T) {
	for id := 1; id <= 30; id++ {
		like, err := QuestionByID(id)
		if err != nil {
			t.Fatalf("question %d: %v", id, err)
		}
		dislike, err := QuestionByID(id + 30)
		if err != nil {
			t.Fatalf("question %d: %v", id+30, err)
		}
		if like.Text != dislike.Text {
			t.Errorf("questions %d and %d have different prompts", id, id+30)
		}
		if like.Dimension != dislike.Dimension {
			t.Errorf("questions %d and %d have different dimensions", id, id+30)
		}
	}
}

func TestQuestions_Deterministic(t *testing.T) {
	first := Questions()
	second := Questions()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("question %d differs across calls", i+1)
		}
	}

	// Returned slice is a copy; mutating it must not corrupt the bank.
	first[0].Text = "mutated"
	again := Questions()
	if again[0].Text == "mutated" {
		t.Error("Questions() exposed internal state")
	}
}

func TestOptions_PositionalDimensionMapping(t *testing.T) {
	options := Options()
	if len(options) != 4 {
		t.Fatalf("got %d options, want 4", len(options))
	}

	dims := vgla.AllDimensions()
	for i, text := range options {
		byIndex, err := DimensionForOption(i)
		if err != nil {
			t.Fatalf("DimensionForOption(%d): %v", i, err)
		}
		if byIndex != dims[i] {
			t.Errorf("option %d dimension = %s, want %s", i, byIndex, dims[i])
		}

		byText, err := DimensionForOptionText(text)
		if err != nil {
			t.Fatalf("DimensionForOptionText(%q): %v", text, err)
		}
		if byText != byIndex {
			t.Errorf("text and index lookups disagree for option %d: %s vs %s", i, byText, byIndex)
		}
	}
}

func TestDimensionForOption_OutOfRange(t *testing.T) {
	for _, i := range []int{-1, 4, 100} {
		if _, err := DimensionForOption(i); err == nil {
			t.Errorf("expected error for index %d", i)
		}
	}
}

func TestDimensionForOptionText_Unknown(t *testing.T) {
	_, err := DimensionForOptionText("buy a lottery ticket")
	if err == nil {
		t.Fatal("expected error for unknown option text")
	}
}

func TestQuestionByID_Unknown(t *testing.T) {
	for _, id := range []int{0, 61, -5} {
		if _, err := QuestionByID(id); err == nil {
			t.Errorf("expected error for id %d", id)
		}
	}
}
