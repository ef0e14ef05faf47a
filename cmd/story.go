package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/storiz/internal/llm"
	"github.com/abhisek/storiz/internal/prefs"
	"github.com/abhisek/storiz/internal/report"
	"github.com/abhisek/storiz/internal/store"
	"github.com/abhisek/storiz/internal/stories"
	"github.com/abhisek/storiz/internal/storygen"
	"github.com/spf13/cobra"
)

// recentThemeWindow is how many past stories to avoid repeating.
const recentThemeWindow = 5

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Recommend (and optionally tell) tonight's story",
	RunE: func(cmd *cobra.Command, args []string) error {
		tell, _ := cmd.Flags().GetBool("tell")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		p, saved, err := prefs.NewManager(s.SnapshotRepo()).Load(ctx)
		if err != nil {
			return fmt.Errorf("load preferences: %w", err)
		}
		if !saved {
			fmt.Fprintln(os.Stderr, "No saved preferences — using defaults. Run `storiz prefs set` to personalize.")
		}

		rec := stories.Recommend(p)
		fmt.Println(report.Recommendation(rec))

		if !tell {
			return s.EventRepo().AppendStory(ctx, store.StoryEventData{
				Theme:               rec.Theme,
				SuggestedLengthSecs: rec.SuggestedLengthSecs,
			})
		}

		return tellStory(ctx, s, rec, p.ReadingLevel)
	},
}

// tellStory generates a full story with the configured LLM provider and
// records the telling as an event.
func tellStory(ctx context.Context, s *store.Store, rec stories.StoryRecommendation, readingLevel int) error {
	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	themes, err := s.EventRepo().RecentStoryThemes(ctx, recentThemeWindow)
	if err != nil {
		return fmt.Errorf("query recent themes: %w", err)
	}

	fmt.Println("Writing your story...")

	svc := storygen.NewService(provider, storygen.DefaultConfig())
	story, err := svc.Generate(ctx, storygen.StoryInput{
		Recommendation: rec,
		ReadingLevel:   readingLevel,
		RecentThemes:   themes,
	})
	if err != nil {
		return fmt.Errorf("generate story: %w", err)
	}

	fmt.Println(report.Story(story))

	return s.EventRepo().AppendStory(ctx, store.StoryEventData{
		Theme:               story.Theme,
		SuggestedLengthSecs: rec.SuggestedLengthSecs,
		Title:               story.Title,
		Generated:           true,
	})
}

func init() {
	storyCmd.Flags().Bool("tell", false, "Generate the full story with the configured LLM provider")
}
