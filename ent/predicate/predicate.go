// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizAnswerEvent is the predicate function for quizanswerevent builders.
type QuizAnswerEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// StoryEvent is the predicate function for storyevent builders.
type StoryEvent func(*sql.Selector)
