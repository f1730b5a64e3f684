package battery

import (
	"fmt"
	"strings"

	"github.com/anand/fintype/internal/vgla"
)

// validateBank performs structural checks on the generated battery.
// Returns a combined error describing all problems found, or nil if valid.
func validateBank(b *questionBank) error {
	var errs []string

	if len(b.questions) != vgla.QuestionCount {
		errs = append(errs, fmt.Sprintf("battery has %d questions, want %d", len(b.questions), vgla.QuestionCount))
	}
	if len(b.options) != len(vgla.AllDimensions()) {
		errs = append(errs, fmt.Sprintf("battery has %d options, want %d", len(b.options), len(vgla.AllDimensions())))
	}

	// Ids must be contiguous 1..60 with the like/dislike split by range.
	seen := make(map[int]bool, len(b.questions))
	for _, q := range b.questions {
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question id %d", q.ID))
		}
		seen[q.ID] = true

		if q.ID < 1 || q.ID > vgla.QuestionCount {
			errs = append(errs, fmt.Sprintf("question id %d out of range", q.ID))
			continue
		}
		if want := PhaseForQuestionID(q.ID); q.Phase != want {
			errs = append(errs, fmt.Sprintf("question %d has phase %s, want %s", q.ID, q.Phase, want))
		}
	}

	// Dimension assignment must cycle through the canonical order per phase,
	// and both phases must reuse the same prompt per scenario position.
	dims := vgla.AllDimensions()
	for _, q := range b.questions {
		scenario := (q.ID - 1) % vgla.LikeQuestionCount
		if want := dims[scenario%len(dims)]; q.Dimension != want {
			errs = append(errs, fmt.Sprintf("question %d has dimension %s, want %s", q.ID, q.Dimension, want))
		}
		if like, ok := b.byID[scenario+1]; ok && like.Text != q.Text {
			errs = append(errs, fmt.Sprintf("question %d text diverges from its like-phase twin", q.ID))
		}
	}

	// Option texts must be distinct and non-empty.
	optSeen := make(map[string]bool, len(b.options))
	for i, text := range b.options {
		if text == "" {
			errs = append(errs, fmt.Sprintf("option %d is empty", i))
		}
		if optSeen[text] {
			errs = append(errs, fmt.Sprintf("duplicate option text %q", text))
		}
		optSeen[text] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("battery validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
