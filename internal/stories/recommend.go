// Package stories maps a learner's reading preferences to a story
// recommendation: a theme and a suggested read-aloud length.
package stories

// DefaultTheme is used when the learner has no topic preferences.
const DefaultTheme = "friendship"

// LevelBonusSecs is the per-reading-level addition to the base length.
const LevelBonusSecs = 25

// StoryPreferences captures what kind of story the learner wants.
type StoryPreferences struct {
	// Topics is an ordered list of favorite topics; the first one wins.
	Topics []string
	// ReadingLevel is the learner's level, 0 and up.
	ReadingLevel int
	// SessionMinutes is how long the reading session should last.
	SessionMinutes int
}

// StoryRecommendation is the picked theme and target length for one story.
type StoryRecommendation struct {
	Theme string
	// SuggestedLengthSecs is the target read-aloud duration in seconds.
	SuggestedLengthSecs int
}

// Recommend picks a story theme and length from the learner's preferences.
//
// The theme is the first preferred topic, falling back to DefaultTheme.
// The length starts from a session-minutes tier and grows with reading
// level. The result is not clamped: a negative reading level shortens the
// story below its tier, mirroring the input.
func Recommend(prefs StoryPreferences) StoryRecommendation {
	theme := DefaultTheme
	if len(prefs.Topics) > 0 {
		theme = prefs.Topics[0]
	}

	return StoryRecommendation{
		Theme:               theme,
		SuggestedLengthSecs: baseLength(prefs.SessionMinutes) + prefs.ReadingLevel*LevelBonusSecs,
	}
}

// baseLength buckets session minutes into a base story length in seconds.
func baseLength(sessionMinutes int) int {
	switch {
	case sessionMinutes <= 5:
		return 300
	case sessionMinutes <= 10:
		return 600
	case sessionMinutes <= 20:
		return 900
	default:
		return 1200
	}
}
