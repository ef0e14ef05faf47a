package store

import (
	"context"
	"math"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSubjectPerformances(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []struct {
		subject string
		correct bool
	}{
		{"Algebra", true},
		{"Algebra", false},
		{"Algebra", true},
		{"Algebra", true},
		{"History", false},
		{"History", false},
	}
	for _, a := range answers {
		err := repo.AppendQuizAnswer(ctx, QuizAnswerEventData{
			SessionID: "sess-1",
			Subject:   a.subject,
			Correct:   a.correct,
			TimeMs:    1500,
		})
		if err != nil {
			t.Fatalf("append quiz answer: %v", err)
		}
	}

	perf, err := repo.SubjectPerformances(ctx)
	if err != nil {
		t.Fatalf("subject performances: %v", err)
	}
	if len(perf) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(perf))
	}

	// Sorted by subject name.
	if perf[0].Subject != "Algebra" || perf[1].Subject != "History" {
		t.Fatalf("unexpected subject order: %+v", perf)
	}
	if perf[0].TotalAttempts != 4 {
		t.Errorf("Algebra attempts = %d, want 4", perf[0].TotalAttempts)
	}
	if math.Abs(perf[0].Accuracy-0.75) > 1e-9 {
		t.Errorf("Algebra accuracy = %f, want 0.75", perf[0].Accuracy)
	}
	if perf[1].TotalAttempts != 2 || perf[1].Accuracy != 0 {
		t.Errorf("History = %+v, want 2 attempts at 0 accuracy", perf[1])
	}
}

func TestSubjectPerformances_Empty(t *testing.T) {
	s := openTestStore(t)
	perf, err := s.EventRepo().SubjectPerformances(context.Background())
	if err != nil {
		t.Fatalf("subject performances: %v", err)
	}
	if len(perf) != 0 {
		t.Fatalf("expected no performances, got %+v", perf)
	}
}

func TestRecentStoryThemes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, theme := range []string{"space", "dinosaurs", "ocean"} {
		err := repo.AppendStory(ctx, StoryEventData{
			Theme:               theme,
			SuggestedLengthSecs: 600,
		})
		if err != nil {
			t.Fatalf("append story: %v", err)
		}
	}

	themes, err := repo.RecentStoryThemes(ctx, 2)
	if err != nil {
		t.Fatalf("recent story themes: %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(themes))
	}
	// Newest first.
	if themes[0] != "ocean" || themes[1] != "dinosaurs" {
		t.Errorf("themes = %v, want [ocean dinosaurs]", themes)
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "story", InputTokens: 100, OutputTokens: 400, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "story", InputTokens: 50, OutputTokens: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "story", InputTokens: 80, OutputTokens: 300, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("llm usage: %v", err)
	}
	haiku := usage["claude-haiku-4-5"]
	if haiku.Requests != 2 || haiku.InputTokens != 150 || haiku.OutputTokens != 600 {
		t.Errorf("haiku usage = %+v", haiku)
	}
	mini := usage["gpt-4o-mini"]
	if mini.Requests != 1 {
		t.Errorf("mini requests = %d, want 1", mini.Requests)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Preferences: &PreferencesData{
				Topics:         []string{"space"},
				ReadingLevel:   2,
				SessionMinutes: 10,
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Preferences == nil || snap.Data.Preferences.Topics[0] != "space" {
		t.Errorf("preferences = %+v", snap.Data.Preferences)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap.Sequence != 5 {
		t.Errorf("latest sequence = %d, want 5", snap.Sequence)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshot count = %d, want 2", count)
	}
}

func TestSequenceIsGlobalAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendQuizAnswer(ctx, QuizAnswerEventData{SessionID: "x", Subject: "Math", Correct: true}); err != nil {
		t.Fatalf("append quiz answer: %v", err)
	}
	if err := repo.AppendStory(ctx, StoryEventData{Theme: "space", SuggestedLengthSecs: 300}); err != nil {
		t.Fatalf("append story: %v", err)
	}

	quiz, err := s.Client().QuizAnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query quiz event: %v", err)
	}
	story, err := s.Client().StoryEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query story event: %v", err)
	}
	if story.Sequence != quiz.Sequence+1 {
		t.Errorf("sequences not contiguous: quiz=%d story=%d", quiz.Sequence, story.Sequence)
	}
}
