// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/storiz/ent/llmrequestevent"
	"github.com/abhisek/storiz/ent/quizanswerevent"
	"github.com/abhisek/storiz/ent/schema"
	"github.com/abhisek/storiz/ent/snapshot"
	"github.com/abhisek/storiz/ent/storyevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	quizanswereventMixin := schema.QuizAnswerEvent{}.Mixin()
	quizanswereventMixinFields0 := quizanswereventMixin[0].Fields()
	_ = quizanswereventMixinFields0
	quizanswereventFields := schema.QuizAnswerEvent{}.Fields()
	_ = quizanswereventFields
	// quizanswereventDescTimestamp is the schema descriptor for timestamp field.
	quizanswereventDescTimestamp := quizanswereventMixinFields0[1].Descriptor()
	// quizanswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizanswerevent.DefaultTimestamp = quizanswereventDescTimestamp.Default.(func() time.Time)
	// quizanswereventDescSessionID is the schema descriptor for session_id field.
	quizanswereventDescSessionID := quizanswereventFields[0].Descriptor()
	// quizanswerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizanswerevent.SessionIDValidator = quizanswereventDescSessionID.Validators[0].(func(string) error)
	// quizanswereventDescSubject is the schema descriptor for subject field.
	quizanswereventDescSubject := quizanswereventFields[1].Descriptor()
	// quizanswerevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	quizanswerevent.SubjectValidator = quizanswereventDescSubject.Validators[0].(func(string) error)
	// quizanswereventDescTimeMs is the schema descriptor for time_ms field.
	quizanswereventDescTimeMs := quizanswereventFields[3].Descriptor()
	// quizanswerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	quizanswerevent.DefaultTimeMs = quizanswereventDescTimeMs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	storyeventMixin := schema.StoryEvent{}.Mixin()
	storyeventMixinFields0 := storyeventMixin[0].Fields()
	_ = storyeventMixinFields0
	storyeventFields := schema.StoryEvent{}.Fields()
	_ = storyeventFields
	// storyeventDescTimestamp is the schema descriptor for timestamp field.
	storyeventDescTimestamp := storyeventMixinFields0[1].Descriptor()
	// storyevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	storyevent.DefaultTimestamp = storyeventDescTimestamp.Default.(func() time.Time)
	// storyeventDescTheme is the schema descriptor for theme field.
	storyeventDescTheme := storyeventFields[0].Descriptor()
	// storyevent.ThemeValidator is a validator for the "theme" field. It is called by the builders before save.
	storyevent.ThemeValidator = storyeventDescTheme.Validators[0].(func(string) error)
	// storyeventDescTitle is the schema descriptor for title field.
	storyeventDescTitle := storyeventFields[2].Descriptor()
	// storyevent.DefaultTitle holds the default value on creation for the title field.
	storyevent.DefaultTitle = storyeventDescTitle.Default.(string)
	// storyeventDescGenerated is the schema descriptor for generated field.
	storyeventDescGenerated := storyeventFields[3].Descriptor()
	// storyevent.DefaultGenerated holds the default value on creation for the generated field.
	storyevent.DefaultGenerated = storyeventDescGenerated.Default.(bool)
}
