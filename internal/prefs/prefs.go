// Package prefs persists the learner's story preferences in the snapshot
// store and imports them from JSON files.
package prefs

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/storiz/internal/store"
	"github.com/abhisek/storiz/internal/stories"
)

// snapshotsKept bounds snapshot history; older ones are pruned on save.
const snapshotsKept = 10

// Default returns the preferences used before the learner sets any.
func Default() stories.StoryPreferences {
	return stories.StoryPreferences{
		Topics:         nil,
		ReadingLevel:   0,
		SessionMinutes: 10,
	}
}

// Manager loads and saves preferences through the snapshot repo.
type Manager struct {
	snapshots store.SnapshotRepo
}

// NewManager creates a preferences manager.
func NewManager(snapshots store.SnapshotRepo) *Manager {
	return &Manager{snapshots: snapshots}
}

// Load returns the saved preferences, or defaults (and false) if the
// learner never saved any.
func (m *Manager) Load(ctx context.Context) (stories.StoryPreferences, bool, error) {
	snap, err := m.snapshots.Latest(ctx)
	if err != nil {
		return Default(), false, fmt.Errorf("load preferences: %w", err)
	}
	if snap == nil || snap.Data.Preferences == nil {
		return Default(), false, nil
	}

	p := snap.Data.Preferences
	return stories.StoryPreferences{
		Topics:         p.Topics,
		ReadingLevel:   p.ReadingLevel,
		SessionMinutes: p.SessionMinutes,
	}, true, nil
}

// Save writes the preferences as a new snapshot, carrying forward the rest
// of the latest snapshot's data, and prunes old snapshots.
func (m *Manager) Save(ctx context.Context, p stories.StoryPreferences) error {
	prev, err := m.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	snap := &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data:      store.SnapshotData{Version: 1},
	}
	if prev != nil {
		snap.Sequence = prev.Sequence
		snap.Data = prev.Data
	}
	snap.Data.Preferences = &store.PreferencesData{
		Topics:         p.Topics,
		ReadingLevel:   p.ReadingLevel,
		SessionMinutes: p.SessionMinutes,
	}

	if err := m.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	if err := m.snapshots.Prune(ctx, snapshotsKept); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
