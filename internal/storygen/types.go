// Package storygen turns a story recommendation into an actual story using
// an LLM provider. Generation is synchronous; the CLI shows a spinner-free
// wait since a story is a one-shot request.
package storygen

import "github.com/abhisek/storiz/internal/stories"

// Story is an LLM-generated read-aloud story.
type Story struct {
	Theme      string
	Title      string
	Paragraphs []string
	Moral      string
}

// StoryInput holds all context needed to generate a story.
type StoryInput struct {
	Recommendation stories.StoryRecommendation
	// ReadingLevel adjusts vocabulary difficulty.
	ReadingLevel int
	// RecentThemes are themes told recently; the story should avoid
	// repeating their plots.
	RecentThemes []string
}
