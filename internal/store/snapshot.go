package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anand/fintype/ent"
	"github.com/anand/fintype/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, kind string, raw json.RawMessage, at time.Time) error {
	dataMap, err := rawToMap(raw)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetKind(kind).
		SetSequence(seqNum).
		SetTimestamp(at).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, kind string) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.Kind(kind)).
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	raw, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}

	return &Snapshot{
		ID:        s.ID,
		Kind:      s.Kind,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Raw:       raw,
	}, nil
}

func (r *snapshotRepo) DeleteKind(ctx context.Context, kind string) error {
	_, err := r.client.Snapshot.Delete().
		Where(snapshot.Kind(kind)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %s snapshots: %w", kind, err)
	}
	return nil
}

func (r *snapshotRepo) Prune(ctx context.Context, kind string, keep int) error {
	// Find the sequence threshold: the Nth most recent snapshot of the kind.
	snapshots, err := r.client.Snapshot.Query().
		Where(snapshot.Kind(kind)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.Kind(kind), snapshot.SequenceLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// rawToMap converts raw JSON to map[string]any for the ent JSON column.
func rawToMap(raw json.RawMessage) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
