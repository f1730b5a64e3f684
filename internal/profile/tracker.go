package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/anand/fintype/internal/store"
	"github.com/anand/fintype/internal/vgla"
)

// Tracker binds the pure profile functions to persistence: the current
// profile lives as the latest profile snapshot, the assessment history as
// append-only events.
type Tracker struct {
	events    store.EventRepo
	snapshots store.SnapshotRepo
}

func NewTracker(events store.EventRepo, snapshots store.SnapshotRepo) *Tracker {
	return &Tracker{events: events, snapshots: snapshots}
}

// Load returns the persisted profile, or nil when no assessment has ever
// completed. A snapshot that no longer decodes is treated as absent rather
// than failing startup.
func (t *Tracker) Load(ctx context.Context) (*Profile, error) {
	snap, err := t.snapshots.Latest(ctx, store.KindProfile)
	if err != nil {
		return nil, fmt.Errorf("load profile snapshot: %w", err)
	}
	if snap == nil {
		return nil, nil
	}
	p, err := DecodeProfile(snap.Raw)
	if err != nil {
		return nil, nil
	}
	return p, nil
}

// Apply folds a completed assessment into the profile and persists both the
// history event and the refreshed profile snapshot. A nil current profile
// means this was the first assessment.
func (t *Tracker) Apply(ctx context.Context, current *Profile, testID string, result *vgla.Result) (*Profile, error) {
	now := result.AnalysisDate

	var updated *Profile
	if current == nil {
		updated = Initialize(result, now)
	} else {
		updated = UpdateType(current, result, now)
	}

	// Profile first, history second: a failed write can leave the profile
	// one record ahead of history, but never durable history the profile
	// has not absorbed.
	raw, err := EncodeProfile(updated)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	if err := t.snapshots.Save(ctx, store.KindProfile, raw, now); err != nil {
		return nil, fmt.Errorf("save profile snapshot: %w", err)
	}

	totals := make(map[string]int, len(result.Scores.Total))
	for d, v := range result.Scores.Total {
		totals[string(d)] = v
	}
	err = t.events.AppendAssessment(ctx, store.AssessmentEventData{
		TestID:      testID,
		Primary:     string(result.Primary),
		Secondary:   string(result.Secondary),
		Combination: string(result.Combination),
		BlindSpot:   string(result.BlindSpot),
		Totals:      totals,
	})
	if err != nil {
		return nil, fmt.Errorf("append assessment: %w", err)
	}

	return updated, nil
}

// History returns all completed assessments in chronological order.
// Events that no longer parse are skipped.
func (t *Tracker) History(ctx context.Context) ([]HistoryRecord, error) {
	events, err := t.events.Assessments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	records := make([]HistoryRecord, 0, len(events))
	for _, e := range events {
		rec, ok := recordFromEvent(e)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func recordFromEvent(e store.AssessmentRecord) (HistoryRecord, bool) {
	primary, err := vgla.ParseDimension(e.Primary)
	if err != nil {
		return HistoryRecord{}, false
	}
	secondary, err := vgla.ParseDimension(e.Secondary)
	if err != nil {
		return HistoryRecord{}, false
	}
	blindSpot, err := vgla.ParseDimension(e.BlindSpot)
	if err != nil {
		return HistoryRecord{}, false
	}
	combination := vgla.Combination(e.Combination)
	if !combination.Valid() {
		return HistoryRecord{}, false
	}

	totals := make(map[vgla.Dimension]int, len(e.Totals))
	for name, v := range e.Totals {
		d, err := vgla.ParseDimension(name)
		if err != nil {
			continue
		}
		totals[d] = v
	}

	return HistoryRecord{
		TestID:      e.TestID,
		TestDate:    e.Timestamp,
		Primary:     primary,
		Secondary:   secondary,
		Combination: combination,
		BlindSpot:   blindSpot,
		Totals:      totals,
	}, true
}

// Refresh loads the profile and flips the retake flag if the window has
// opened, persisting the flag change so the reminder survives restarts.
func (t *Tracker) Refresh(ctx context.Context, now time.Time) (*Profile, error) {
	p, err := t.Load(ctx)
	if err != nil || p == nil {
		return p, err
	}
	if p.ShouldRetakeTest || !MarkRetakeDue(p, now) {
		return p, nil
	}
	raw, err := EncodeProfile(p)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	if err := t.snapshots.Save(ctx, store.KindProfile, raw, now); err != nil {
		return nil, fmt.Errorf("save profile snapshot: %w", err)
	}
	return p, nil
}
