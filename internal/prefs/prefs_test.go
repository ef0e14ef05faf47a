package prefs

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/storiz/internal/store"
	"github.com/abhisek/storiz/internal/stories"
)

// memSnapshotRepo implements store.SnapshotRepo in memory.
type memSnapshotRepo struct {
	snaps []*store.Snapshot
}

func (m *memSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snaps = append(m.snaps, snap)
	return nil
}

func (m *memSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snaps) == 0 {
		return nil, nil
	}
	latest := m.snaps[0]
	for _, s := range m.snaps[1:] {
		if s.Timestamp.After(latest.Timestamp) {
			latest = s
		}
	}
	return latest, nil
}

func (m *memSnapshotRepo) Prune(_ context.Context, keep int) error {
	if len(m.snaps) > keep {
		m.snaps = m.snaps[len(m.snaps)-keep:]
	}
	return nil
}

func TestLoad_DefaultsWhenEmpty(t *testing.T) {
	mgr := NewManager(&memSnapshotRepo{})

	p, saved, err := mgr.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if saved {
		t.Error("expected saved=false for empty store")
	}
	if p.SessionMinutes != 10 || p.ReadingLevel != 0 || len(p.Topics) != 0 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestSaveThenLoad(t *testing.T) {
	mgr := NewManager(&memSnapshotRepo{})
	ctx := context.Background()

	want := stories.StoryPreferences{
		Topics:         []string{"space", "ocean"},
		ReadingLevel:   3,
		SessionMinutes: 15,
	}
	if err := mgr.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, saved, err := mgr.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !saved {
		t.Error("expected saved=true after save")
	}
	if got.ReadingLevel != 3 || got.SessionMinutes != 15 {
		t.Errorf("loaded = %+v, want %+v", got, want)
	}
	if len(got.Topics) != 2 || got.Topics[0] != "space" {
		t.Errorf("topics = %v", got.Topics)
	}
}

func TestSave_CarriesForwardSequence(t *testing.T) {
	repo := &memSnapshotRepo{}
	repo.snaps = append(repo.snaps, &store.Snapshot{
		Sequence:  7,
		Timestamp: time.Now().Add(-time.Hour),
		Data:      store.SnapshotData{Version: 1},
	})
	mgr := NewManager(repo)

	if err := mgr.Save(context.Background(), Default()); err != nil {
		t.Fatalf("save: %v", err)
	}

	latest, _ := repo.Latest(context.Background())
	if latest.Sequence != 7 {
		t.Errorf("sequence = %d, want 7", latest.Sequence)
	}
}

func TestParseFile_Valid(t *testing.T) {
	data := []byte(`{"topics":["dinosaurs"],"reading_level":2,"session_minutes":20}`)

	p, err := ParseFile(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Topics[0] != "dinosaurs" || p.ReadingLevel != 2 || p.SessionMinutes != 20 {
		t.Errorf("parsed = %+v", p)
	}
}

func TestParseFile_EmptyTopicsAllowed(t *testing.T) {
	data := []byte(`{"topics":[],"reading_level":0,"session_minutes":5}`)

	p, err := ParseFile(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(p.Topics) != 0 {
		t.Errorf("topics = %v, want empty", p.Topics)
	}
}

func TestParseFile_Rejected(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing field", `{"topics":[],"reading_level":0}`},
		{"negative level", `{"topics":[],"reading_level":-1,"session_minutes":5}`},
		{"zero minutes", `{"topics":[],"reading_level":0,"session_minutes":0}`},
		{"empty topic string", `{"topics":[""],"reading_level":0,"session_minutes":5}`},
		{"extra field", `{"topics":[],"reading_level":0,"session_minutes":5,"color":"red"}`},
		{"not json", `topics: []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFile([]byte(tt.data)); err == nil {
				t.Errorf("expected %s to be rejected", tt.name)
			}
		})
	}
}
