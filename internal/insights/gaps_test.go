package insights

import (
	"math"
	"reflect"
	"testing"
)

func TestAnalyze_FiltersUnreliableAndMastered(t *testing.T) {
	input := []SubjectPerformance{
		{Subject: "Fractions", Accuracy: 0.4, TotalAttempts: 2},  // too few attempts
		{Subject: "Spelling", Accuracy: 0.7, TotalAttempts: 10},  // at threshold
		{Subject: "Geography", Accuracy: 0.95, TotalAttempts: 8}, // mastered
	}

	gaps := Analyze(input)
	if len(gaps) != 0 {
		t.Fatalf("expected no gaps, got %d: %+v", len(gaps), gaps)
	}
}

func TestAnalyze_SeverityIsInverseAccuracy(t *testing.T) {
	input := []SubjectPerformance{
		{Subject: "Algebra", Accuracy: 0.5, TotalAttempts: 4},
		{Subject: "History", Accuracy: 0.9, TotalAttempts: 5},
	}

	gaps := Analyze(input)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].Subject != "Algebra" {
		t.Errorf("subject = %q, want Algebra", gaps[0].Subject)
	}
	if math.Abs(gaps[0].Severity-0.5) > 1e-9 {
		t.Errorf("severity = %f, want 0.5", gaps[0].Severity)
	}
}

func TestAnalyze_SortsBySeverityDescending(t *testing.T) {
	input := []SubjectPerformance{
		{Subject: "Reading", Accuracy: 0.6, TotalAttempts: 5},
		{Subject: "Fractions", Accuracy: 0.2, TotalAttempts: 5},
		{Subject: "Decimals", Accuracy: 0.4, TotalAttempts: 5},
	}

	gaps := Analyze(input)
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(gaps))
	}
	for i := 0; i < len(gaps)-1; i++ {
		if gaps[i].Severity < gaps[i+1].Severity {
			t.Errorf("gaps[%d].Severity = %f < gaps[%d].Severity = %f",
				i, gaps[i].Severity, i+1, gaps[i+1].Severity)
		}
	}
	if gaps[0].Subject != "Fractions" || gaps[2].Subject != "Reading" {
		t.Errorf("unexpected order: %+v", gaps)
	}
}

func TestAnalyze_StableTieBreak(t *testing.T) {
	// Equal severity keeps input order.
	input := []SubjectPerformance{
		{Subject: "First", Accuracy: 0.5, TotalAttempts: 3},
		{Subject: "Second", Accuracy: 0.5, TotalAttempts: 9},
		{Subject: "Third", Accuracy: 0.5, TotalAttempts: 6},
	}

	gaps := Analyze(input)
	want := []string{"First", "Second", "Third"}
	for i, g := range gaps {
		if g.Subject != want[i] {
			t.Fatalf("order = %+v, want %v", gaps, want)
		}
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	gaps := Analyze(nil)
	if len(gaps) != 0 {
		t.Fatalf("expected empty result, got %+v", gaps)
	}
	gaps = Analyze([]SubjectPerformance{})
	if len(gaps) != 0 {
		t.Fatalf("expected empty result, got %+v", gaps)
	}
}

func TestAnalyze_ClampsOutOfRangeAccuracy(t *testing.T) {
	input := []SubjectPerformance{
		{Subject: "Broken", Accuracy: -0.5, TotalAttempts: 5},
	}

	gaps := Analyze(input)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].Severity != 1.0 {
		t.Errorf("severity = %f, want clamped 1.0", gaps[0].Severity)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	input := []SubjectPerformance{
		{Subject: "Algebra", Accuracy: 0.5, TotalAttempts: 4},
		{Subject: "Reading", Accuracy: 0.3, TotalAttempts: 7},
	}

	first := Analyze(input)
	second := Analyze(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyze_RecommendationMentionsSubject(t *testing.T) {
	gaps := Analyze([]SubjectPerformance{
		{Subject: "Fractions", Accuracy: 0.3, TotalAttempts: 5},
	})
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	want := "Prioritize scaffolded practice for Fractions with short retrieval quizzes."
	if gaps[0].Recommendation != want {
		t.Errorf("recommendation = %q, want %q", gaps[0].Recommendation, want)
	}
}
