package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkrishnan/storyfox/internal/profile"
)

// snapshotVersion is bumped when the SnapshotData layout changes.
const snapshotVersion = 1

// snapshotKeep bounds how many snapshots survive a prune.
const snapshotKeep = 20

// profileRepo implements ProfileRepo on top of the snapshot log.
type profileRepo struct {
	snapshots SnapshotRepo
	seq       *sequenceCounter
}

// Load returns the progression state from the latest snapshot, normalized
// so invariants hold even if the stored data predates a rule change. With
// no snapshot it returns the default state for a brand-new reader.
func (r *profileRepo) Load(ctx context.Context) (profile.ProgressionState, error) {
	snap, err := r.snapshots.Latest(ctx)
	if err != nil {
		return profile.ProgressionState{}, fmt.Errorf("load profile: %w", err)
	}
	if snap == nil {
		return profile.DefaultState(), nil
	}
	return profile.Normalize(snap.Data.Progression), nil
}

func (r *profileRepo) Save(ctx context.Context, state profile.ProgressionState) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	err = r.snapshots.Save(ctx, &Snapshot{
		Sequence:  seqNum,
		Timestamp: time.Now(),
		Data: SnapshotData{
			Version:     snapshotVersion,
			Progression: state,
		},
	})
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return r.snapshots.Prune(ctx, snapshotKeep)
}

// Reset writes a fresh default state on top of the snapshot log. History
// events are kept; only the progression state starts over.
func (r *profileRepo) Reset(ctx context.Context) error {
	return r.Save(ctx, profile.DefaultState())
}
