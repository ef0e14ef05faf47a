package storygen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/storiz/internal/llm"
	"github.com/abhisek/storiz/internal/stories"
)

func validStoryJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "The Friendly Comet",
		"paragraphs": [
			"High above the town, a small comet named Pip zoomed past the stars.",
			"Pip wanted a friend, so one night it dipped low and winked at a girl named Mira.",
			"Mira waved back, and from then on they met every clear night."
		],
		"moral": "A little kindness can reach across any distance."
	}`)
}

func testInput() StoryInput {
	return StoryInput{
		Recommendation: stories.StoryRecommendation{Theme: "space", SuggestedLengthSecs: 600},
		ReadingLevel:   2,
	}
}

func TestGenerate_ReturnsStory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStoryJSON()})
	svc := NewService(mock, DefaultConfig())

	story, err := svc.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if story.Title != "The Friendly Comet" {
		t.Errorf("title = %q", story.Title)
	}
	if len(story.Paragraphs) != 3 {
		t.Errorf("paragraphs = %d, want 3", len(story.Paragraphs))
	}
	if story.Theme != "space" {
		t.Errorf("theme = %q, want space", story.Theme)
	}
	if story.Moral == "" {
		t.Error("expected non-empty moral")
	}
}

func TestGenerate_PromptCarriesLengthAndTheme(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStoryJSON()})
	svc := NewService(mock, DefaultConfig())

	input := testInput()
	input.RecentThemes = []string{"dinosaurs"}
	if _, err := svc.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Theme: space") {
		t.Errorf("prompt missing theme:\n%s", prompt)
	}
	// 600s at 140 wpm = 1400 words.
	if !strings.Contains(prompt, "1400 words") {
		t.Errorf("prompt missing word target:\n%s", prompt)
	}
	if !strings.Contains(prompt, "dinosaurs") {
		t.Errorf("prompt missing recent themes:\n%s", prompt)
	}
	if mock.Calls[0].Schema != StorySchema {
		t.Error("expected request to carry StorySchema")
	}
}

func TestGenerate_EmptyBodyRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"Hollow","paragraphs":[],"moral":"None."}`),
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error for empty story body")
	}
}

func TestGenerate_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), testInput())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got: %v", err)
	}
}
