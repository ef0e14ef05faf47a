package storygen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/storiz/internal/llm"
)

// Service generates stories from recommendations.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a story generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type storyOutput struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
	Moral      string   `json:"moral"`
}

// Generate produces a story for the given input.
func (s *Service) Generate(ctx context.Context, input StoryInput) (*Story, error) {
	ctx = llm.WithPurpose(ctx, "story")

	req := llm.Request{
		System: storySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStoryUserMessage(input)},
		},
		Schema:      StorySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("story generation: %w", err)
	}

	var out storyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse story response: %w", err)
	}
	if len(out.Paragraphs) == 0 {
		return nil, fmt.Errorf("story generation: empty story body")
	}

	return &Story{
		Theme:      input.Recommendation.Theme,
		Title:      out.Title,
		Paragraphs: out.Paragraphs,
		Moral:      out.Moral,
	}, nil
}
