package store

import (
	"context"
	"fmt"

	"github.com/anand/fintype/ent"
	"github.com/anand/fintype/ent/responseevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendResponse(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetTestID(data.TestID).
		SetQuestionID(data.QuestionID).
		SetPhase(data.Phase).
		SetOptionText(data.OptionText).
		SetDimension(data.Dimension).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) ResponsesForTest(ctx context.Context, testID string) (int, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(responseevent.TestID(testID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query responses for test: %w", err)
	}

	// Re-answered questions append new events; count distinct question ids.
	distinct := make(map[int]bool, len(events))
	for _, e := range events {
		distinct[e.QuestionID] = true
	}
	return len(distinct), nil
}
