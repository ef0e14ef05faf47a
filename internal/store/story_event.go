package store

import (
	"context"
	"fmt"

	"github.com/abhisek/storiz/ent"
	"github.com/abhisek/storiz/ent/storyevent"
)

func (r *eventRepo) AppendStory(ctx context.Context, data StoryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.StoryEvent.Create().
		SetSequence(seqNum).
		SetTheme(data.Theme).
		SetSuggestedLengthSecs(data.SuggestedLengthSecs).
		SetGenerated(data.Generated)

	if data.Title != "" {
		builder = builder.SetTitle(data.Title)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save story event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentStoryThemes(ctx context.Context, n int) ([]string, error) {
	events, err := r.client.StoryEvent.Query().
		Order(ent.Desc(storyevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent stories: %w", err)
	}

	themes := make([]string, 0, len(events))
	for _, e := range events {
		themes = append(themes, e.Theme)
	}
	return themes, nil
}
