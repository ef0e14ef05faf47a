package report

import (
	"strings"
	"testing"

	"github.com/abhisek/storiz/internal/insights"
	"github.com/abhisek/storiz/internal/stories"
	"github.com/abhisek/storiz/internal/storygen"
)

func TestGaps_Empty(t *testing.T) {
	out := Gaps(nil)
	if !strings.Contains(out, "on track") {
		t.Errorf("empty report missing all-clear message:\n%s", out)
	}
}

func TestGaps_ListsSubjectsInOrder(t *testing.T) {
	out := Gaps([]insights.KnowledgeGap{
		{Subject: "Fractions", Severity: 0.8, Recommendation: "Prioritize scaffolded practice for Fractions with short retrieval quizzes."},
		{Subject: "Reading", Severity: 0.4, Recommendation: "Prioritize scaffolded practice for Reading with short retrieval quizzes."},
	})

	fracIdx := strings.Index(out, "Fractions")
	readIdx := strings.Index(out, "Reading")
	if fracIdx == -1 || readIdx == -1 {
		t.Fatalf("subjects missing from report:\n%s", out)
	}
	if fracIdx > readIdx {
		t.Errorf("expected Fractions before Reading:\n%s", out)
	}
	if !strings.Contains(out, "80%") {
		t.Errorf("missing severity percentage:\n%s", out)
	}
}

func TestSeverityBar_Bounds(t *testing.T) {
	if got := severityBar(0); strings.Contains(got, "█") {
		t.Errorf("zero severity should have no fill: %q", got)
	}
	full := severityBar(1)
	if strings.Contains(full, "░") {
		t.Errorf("full severity should be all fill: %q", full)
	}
	over := severityBar(1.7)
	if len([]rune(over)) != severityBarWidth {
		t.Errorf("bar width = %d, want %d", len([]rune(over)), severityBarWidth)
	}
}

func TestRecommendation_FormatsLength(t *testing.T) {
	out := Recommendation(stories.StoryRecommendation{Theme: "space", SuggestedLengthSecs: 650})
	if !strings.Contains(out, "space") {
		t.Errorf("missing theme:\n%s", out)
	}
	if !strings.Contains(out, "10:50") {
		t.Errorf("missing formatted length:\n%s", out)
	}
}

func TestStory_RendersAllParts(t *testing.T) {
	out := Story(&storygen.Story{
		Title:      "The Friendly Comet",
		Paragraphs: []string{"First paragraph.", "Second paragraph."},
		Moral:      "Kindness travels far.",
	})
	for _, want := range []string{"The Friendly Comet", "First paragraph.", "Second paragraph.", "Kindness travels far."} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
