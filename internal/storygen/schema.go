package storygen

import "github.com/abhisek/storiz/internal/llm"

// StorySchema defines the JSON schema for story generation.
var StorySchema = &llm.Schema{
	Name:        "bedtime-story",
	Description: "A read-aloud story for a child, with a title, paragraphs, and a moral",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short story title (3-8 words)",
			},
			"paragraphs": map[string]any{
				"type":        "array",
				"description": "Story body, one element per paragraph, in reading order",
				"items": map[string]any{
					"type": "string",
				},
			},
			"moral": map[string]any{
				"type":        "string",
				"description": "One-sentence takeaway a child can understand",
			},
		},
		"required":             []any{"title", "paragraphs", "moral"},
		"additionalProperties": false,
	},
}
