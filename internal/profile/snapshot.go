package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/anand/fintype/internal/vgla"
)

// profileSnapshot is the persisted form of Profile. Times are RFC 3339
// strings so the stored blob stays readable and stable across ent's JSON
// column round trip.
type profileSnapshot struct {
	Primary             string `json:"primary"`
	Secondary           string `json:"secondary"`
	Combination         string `json:"combination"`
	LastTestDate        string `json:"last_test_date"`
	NextTestDate        string `json:"next_test_date"`
	ShouldRetakeTest    bool   `json:"should_retake_test"`
	HasTypeChanged      bool   `json:"has_type_changed"`
	PreviousCombination string `json:"previous_combination,omitempty"`
	TypeChangeDate      string `json:"type_change_date,omitempty"`
}

// EncodeProfile serializes the profile for snapshot storage.
func EncodeProfile(p *Profile) (json.RawMessage, error) {
	snap := profileSnapshot{
		Primary:             string(p.Primary),
		Secondary:           string(p.Secondary),
		Combination:         string(p.Combination),
		LastTestDate:        p.LastTestDate.Format(time.RFC3339Nano),
		NextTestDate:        p.NextTestDate.Format(time.RFC3339Nano),
		ShouldRetakeTest:    p.ShouldRetakeTest,
		HasTypeChanged:      p.HasTypeChanged,
		PreviousCombination: string(p.PreviousCombination),
	}
	if p.TypeChangeDate != nil {
		snap.TypeChangeDate = p.TypeChangeDate.Format(time.RFC3339Nano)
	}
	return json.Marshal(snap)
}

// DecodeProfile rebuilds a profile from its snapshot form, validating the
// dimension and combination fields.
func DecodeProfile(raw json.RawMessage) (*Profile, error) {
	var snap profileSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal profile snapshot: %w", err)
	}

	primary, err := vgla.ParseDimension(snap.Primary)
	if err != nil {
		return nil, fmt.Errorf("profile snapshot: %w", err)
	}
	secondary, err := vgla.ParseDimension(snap.Secondary)
	if err != nil {
		return nil, fmt.Errorf("profile snapshot: %w", err)
	}
	combination := vgla.Combination(snap.Combination)
	if !combination.Valid() {
		return nil, fmt.Errorf("profile snapshot: invalid combination %q", snap.Combination)
	}

	lastTest, err := time.Parse(time.RFC3339Nano, snap.LastTestDate)
	if err != nil {
		return nil, fmt.Errorf("profile snapshot last_test_date: %w", err)
	}
	nextTest, err := time.Parse(time.RFC3339Nano, snap.NextTestDate)
	if err != nil {
		return nil, fmt.Errorf("profile snapshot next_test_date: %w", err)
	}

	p := &Profile{
		Primary:          primary,
		Secondary:        secondary,
		Combination:      combination,
		LastTestDate:     lastTest,
		NextTestDate:     nextTest,
		ShouldRetakeTest: snap.ShouldRetakeTest,
		HasTypeChanged:   snap.HasTypeChanged,
	}

	if snap.PreviousCombination != "" {
		prev := vgla.Combination(snap.PreviousCombination)
		if !prev.Valid() {
			return nil, fmt.Errorf("profile snapshot: invalid previous combination %q", snap.PreviousCombination)
		}
		p.PreviousCombination = prev
	}
	if snap.TypeChangeDate != "" {
		changed, err := time.Parse(time.RFC3339Nano, snap.TypeChangeDate)
		if err != nil {
			return nil, fmt.Errorf("profile snapshot type_change_date: %w", err)
		}
		p.TypeChangeDate = &changed
	}

	return p, nil
}
