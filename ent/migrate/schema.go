// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizAnswerEventsColumns holds the columns for the "quiz_answer_events" table.
	QuizAnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// QuizAnswerEventsTable holds the schema information for the "quiz_answer_events" table.
	QuizAnswerEventsTable = &schema.Table{
		Name:       "quiz_answer_events",
		Columns:    QuizAnswerEventsColumns,
		PrimaryKey: []*schema.Column{QuizAnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizanswerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[1]},
			},
			{
				Name:    "quizanswerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[2]},
			},
			{
				Name:    "quizanswerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[3]},
			},
			{
				Name:    "quizanswerevent_subject",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[4]},
			},
			{
				Name:    "quizanswerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StoryEventsColumns holds the columns for the "story_events" table.
	StoryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "theme", Type: field.TypeString},
		{Name: "suggested_length_secs", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "generated", Type: field.TypeBool, Default: false},
	}
	// StoryEventsTable holds the schema information for the "story_events" table.
	StoryEventsTable = &schema.Table{
		Name:       "story_events",
		Columns:    StoryEventsColumns,
		PrimaryKey: []*schema.Column{StoryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "storyevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StoryEventsColumns[1]},
			},
			{
				Name:    "storyevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StoryEventsColumns[2]},
			},
			{
				Name:    "storyevent_theme",
				Unique:  false,
				Columns: []*schema.Column{StoryEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuizAnswerEventsTable,
		SnapshotsTable,
		StoryEventsTable,
	}
)

func init() {
}
