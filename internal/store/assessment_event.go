package store

import (
	"context"
	"fmt"

	"github.com/anand/fintype/ent"
	"github.com/anand/fintype/ent/assessmentevent"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetTestID(data.TestID).
		SetPrimaryDimension(data.Primary).
		SetSecondaryDimension(data.Secondary).
		SetCombination(data.Combination).
		SetBlindSpot(data.BlindSpot).
		SetTotals(data.Totals).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) Assessments(ctx context.Context) ([]AssessmentRecord, error) {
	events, err := r.client.AssessmentEvent.Query().
		Order(ent.Asc(assessmentevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	records := make([]AssessmentRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AssessmentRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AssessmentEventData: AssessmentEventData{
				TestID:      e.TestID,
				Primary:     e.PrimaryDimension,
				Secondary:   e.SecondaryDimension,
				Combination: e.Combination,
				BlindSpot:   e.BlindSpot,
				Totals:      e.Totals,
			},
		})
	}
	return records, nil
}
