package battery

import (
	"strings"
	"testing"
)

func TestBuildBank_SeedIsValid(t *testing.T) {
	if _, err := buildBank(scenarioPrompts[:], optionTexts[:]); err != nil {
		t.Fatalf("shipped seed failed validation: %v", err)
	}
}

func TestBuildBank_WrongPromptCount(t *testing.T) {
	_, err := buildBank(scenarioPrompts[:29], optionTexts[:])
	if err == nil {
		t.Fatal("expected validation error for 29 prompts")
	}
	if !strings.Contains(err.Error(), "58 questions") {
		t.Errorf("error should name the bad question count, got: %v", err)
	}
}

func TestBuildBank_DuplicateOptionText(t *testing.T) {
	options := []string{"same", "same", "other", "another"}
	_, err := buildBank(scenarioPrompts[:], options)
	if err == nil {
		t.Fatal("expected validation error for duplicate option texts")
	}
	if !strings.Contains(err.Error(), "duplicate option") {
		t.Errorf("error should name the duplicate option, got: %v", err)
	}
}

func TestBuildBank_EmptyOptionText(t *testing.T) {
	options := []string{"a", "", "c", "d"}
	_, err := buildBank(scenarioPrompts[:], options)
	if err == nil {
		t.Fatal("expected validation error for empty option text")
	}
}

func TestParsePhase(t *testing.T) {
	tests := []struct {
		input   string
		want    Phase
		wantErr bool
	}{
		{"like", PhaseLike, false},
		{"dislike", PhaseDislike, false},
		{"", "", true},
		{"neutral", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePhase(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePhase(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePhase(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
		}
	}
}
