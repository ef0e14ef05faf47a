package storygen

import (
	"fmt"
	"strings"
)

const storySystemPrompt = `You are a warm, imaginative storyteller for children aged 6-10. You write read-aloud stories that are gentle, positive, and free of anything scary or violent.`

// ReadAloudWordsPerMinute is the pacing used to turn a target duration
// into a word count. Kids' read-aloud pace runs slower than adult silent
// reading.
const ReadAloudWordsPerMinute = 140

func buildStoryUserMessage(input StoryInput) string {
	var b strings.Builder

	words := input.Recommendation.SuggestedLengthSecs * ReadAloudWordsPerMinute / 60
	b.WriteString(fmt.Sprintf("Theme: %s\n", input.Recommendation.Theme))
	b.WriteString(fmt.Sprintf("Target length: about %d words (%d seconds read aloud)\n",
		words, input.Recommendation.SuggestedLengthSecs))
	b.WriteString(fmt.Sprintf("Reading level: %d (0 = beginner; higher levels may use richer vocabulary)\n",
		input.ReadingLevel))

	if len(input.RecentThemes) > 0 {
		b.WriteString("\nRecently told themes (write something that feels fresh next to these):\n")
		for _, theme := range input.RecentThemes {
			b.WriteString(fmt.Sprintf("- %s\n", theme))
		}
	}

	b.WriteString(`
Instructions:
1. Write a complete story on the theme, close to the target length.
2. Use short paragraphs, 2-4 sentences each.
3. Give it a clear beginning, middle, and gentle ending.
4. Keep vocabulary appropriate to the reading level.
5. End with a one-sentence moral a child can understand.
6. Plain text only. No markdown, no emoji.`)

	return b.String()
}
