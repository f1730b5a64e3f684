package profile

import (
	"time"

	"github.com/anand/fintype/internal/vgla"
)

// RetakeIntervalMonths is the fixed cadence between assessments. Like the
// combination gap threshold, it is a business constant, not a tunable.
const RetakeIntervalMonths = 3

// Profile is the longitudinal money-personality state for the user.
// Created on the first completed assessment and mutated only through
// UpdateType; the engine never deletes it.
type Profile struct {
	Primary     vgla.Dimension   `json:"primary"`
	Secondary   vgla.Dimension   `json:"secondary"`
	Combination vgla.Combination `json:"combination"`

	LastTestDate time.Time `json:"last_test_date"`
	NextTestDate time.Time `json:"next_test_date"`

	// ShouldRetakeTest is set by callers when CheckRetakeNeeded reports due,
	// and cleared by UpdateType.
	ShouldRetakeTest bool `json:"should_retake_test"`

	// HasTypeChanged records that some retake produced a different
	// combination type than the one before it.
	HasTypeChanged      bool             `json:"has_type_changed"`
	PreviousCombination vgla.Combination `json:"previous_combination,omitempty"`
	TypeChangeDate      *time.Time       `json:"type_change_date,omitempty"`
}

// Initialize creates the profile from the first completed assessment.
func Initialize(result *vgla.Result, now time.Time) *Profile {
	return &Profile{
		Primary:      result.Primary,
		Secondary:    result.Secondary,
		Combination:  result.Combination,
		LastTestDate: now,
		NextTestDate: now.AddDate(0, RetakeIntervalMonths, 0),
	}
}

// UpdateType applies a retake result to the profile. On a type change the
// outgoing combination is archived and the change date stamped; current
// fields and both test dates always refresh, and the retake flag clears.
// The input profile is not modified.
func UpdateType(p *Profile, result *vgla.Result, now time.Time) *Profile {
	updated := *p

	if result.Combination != p.Combination {
		updated.HasTypeChanged = true
		updated.PreviousCombination = p.Combination
		changed := now
		updated.TypeChangeDate = &changed
	}

	updated.Primary = result.Primary
	updated.Secondary = result.Secondary
	updated.Combination = result.Combination
	updated.LastTestDate = now
	updated.NextTestDate = now.AddDate(0, RetakeIntervalMonths, 0)
	updated.ShouldRetakeTest = false

	return &updated
}

// CheckRetakeNeeded reports whether the retake window has opened. The
// boundary is inclusive: due exactly at NextTestDate. Pull-based; a
// reminder collaborator is expected to poll it.
func CheckRetakeNeeded(p *Profile, now time.Time) bool {
	if p == nil {
		return false
	}
	return !now.Before(p.NextTestDate)
}

// MarkRetakeDue sets the retake flag when the window has opened, returning
// whether the profile is due.
func MarkRetakeDue(p *Profile, now time.Time) bool {
	if !CheckRetakeNeeded(p, now) {
		return false
	}
	p.ShouldRetakeTest = true
	return true
}
