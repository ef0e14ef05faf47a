// Package report renders gap reports, recommendations, and stories as
// styled terminal output.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/storiz/internal/insights"
	"github.com/abhisek/storiz/internal/stories"
	"github.com/abhisek/storiz/internal/storygen"
)

// Color palette — kid-friendly, bright but not garish
var (
	primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	accent  = lipgloss.Color("#F97316") // Orange
	success = lipgloss.Color("#22C55E") // Green
	warn    = lipgloss.Color("#F43F5E") // Rose
	textDim = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary)
	dimStyle    = lipgloss.NewStyle().Foreground(textDim)
	severeStyle = lipgloss.NewStyle().Bold(true).Foreground(warn)
	mildStyle   = lipgloss.NewStyle().Foreground(accent)
	okStyle     = lipgloss.NewStyle().Foreground(success)
)

// severityBarWidth is the width of the gap severity bar in cells.
const severityBarWidth = 20

// Gaps renders the knowledge-gap report.
func Gaps(gaps []insights.KnowledgeGap) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Knowledge gaps"))
	b.WriteString("\n\n")

	if len(gaps) == 0 {
		b.WriteString(okStyle.Render("No gaps found — every subject is on track!"))
		b.WriteString("\n")
		return b.String()
	}

	for _, g := range gaps {
		style := mildStyle
		if g.Severity >= 0.5 {
			style = severeStyle
		}
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			style.Render(fmt.Sprintf("%-14s", g.Subject)),
			severityBar(g.Severity),
			dimStyle.Render(fmt.Sprintf("%.0f%%", g.Severity*100)),
		))
		b.WriteString(dimStyle.Render("  " + g.Recommendation))
		b.WriteString("\n\n")
	}

	return b.String()
}

// severityBar renders severity as a fixed-width bar.
func severityBar(severity float64) string {
	filled := int(severity*severityBarWidth + 0.5)
	if filled > severityBarWidth {
		filled = severityBarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", severityBarWidth-filled)
}

// Recommendation renders a story recommendation.
func Recommendation(rec stories.StoryRecommendation) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tonight's story"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Theme:  %s\n", mildStyle.Render(rec.Theme)))
	mins := rec.SuggestedLengthSecs / 60
	secs := rec.SuggestedLengthSecs % 60
	b.WriteString(fmt.Sprintf("  Length: %s\n", dimStyle.Render(fmt.Sprintf("about %d:%02d read aloud", mins, secs))))
	return b.String()
}

// Story renders a generated story for reading aloud.
func Story(story *storygen.Story) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(story.Title))
	b.WriteString("\n\n")
	for _, p := range story.Paragraphs {
		b.WriteString(p)
		b.WriteString("\n\n")
	}
	if story.Moral != "" {
		b.WriteString(dimStyle.Render("Moral: " + story.Moral))
		b.WriteString("\n")
	}

	return b.String()
}
