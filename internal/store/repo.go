package store

import (
	"context"
	"time"

	"github.com/abhisek/storiz/internal/insights"
)

// SnapshotData captures the learner's settings and state at a point in time.
type SnapshotData struct {
	Version int `json:"version"`

	// Preferences is the learner's saved story preferences, nil if never set.
	Preferences *PreferencesData `json:"preferences,omitempty"`
}

// PreferencesData is the persisted form of story preferences.
type PreferencesData struct {
	Topics         []string `json:"topics"`
	ReadingLevel   int      `json:"reading_level"`
	SessionMinutes int      `json:"session_minutes"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// QuizAnswerEventData captures one answered quiz question.
type QuizAnswerEventData struct {
	SessionID string
	Subject   string
	Correct   bool
	TimeMs    int
}

// StoryEventData captures one story recommendation or telling.
type StoryEventData struct {
	Theme               string
	SuggestedLengthSecs int
	Title               string
	Generated           bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageTotals aggregates token consumption across all LLM requests.
type LLMUsageTotals struct {
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendQuizAnswer records one answered quiz question.
	AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error

	// AppendStory records a story recommendation or telling.
	AppendStory(ctx context.Context, data StoryEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SubjectPerformances aggregates the quiz history into per-subject
	// accuracy and attempt counts, ordered by subject name.
	SubjectPerformances(ctx context.Context) ([]insights.SubjectPerformance, error)

	// RecentStoryThemes returns the themes of the last n stories, newest first.
	RecentStoryThemes(ctx context.Context, n int) ([]string, error)

	// LLMUsage sums token consumption per model across all LLM request events.
	LLMUsage(ctx context.Context) (map[string]LLMUsageTotals, error)
}
