// Package insights derives knowledge-gap diagnoses from per-subject quiz
// performance. It is a pure computation layer: callers aggregate quiz history
// into SubjectPerformance records (see internal/store) and render the
// resulting gaps however they like.
package insights

import (
	"fmt"
	"sort"
)

const (
	// MinReliableAttempts is the attempt count below which accuracy is
	// considered statistically unreliable and the subject is skipped.
	MinReliableAttempts = 3

	// GapAccuracyThreshold is the accuracy at or above which a subject is
	// not considered a gap.
	GapAccuracyThreshold = 0.7
)

// SubjectPerformance summarizes a learner's quiz history on one subject.
type SubjectPerformance struct {
	// Subject identifies the topic, e.g. "Fractions" or "History".
	Subject string
	// Accuracy is the fraction of correct answers, in [0,1].
	Accuracy float64
	// TotalAttempts is the number of questions answered on this subject.
	TotalAttempts int
}

// KnowledgeGap flags a subject that needs attention.
type KnowledgeGap struct {
	Subject string
	// Severity measures how far accuracy falls below mastery, in [0,1].
	// Higher means more urgent.
	Severity float64
	// Recommendation is a short practice suggestion for the subject.
	Recommendation string
}

// Analyze filters performance records down to knowledge gaps and orders
// them most-severe first.
//
// A subject qualifies as a gap when it has at least MinReliableAttempts
// attempts and accuracy below GapAccuracyThreshold. Severity is 1-accuracy,
// clamped to [0,1] to stay well-defined for out-of-range accuracy values.
// The sort is stable: subjects with equal severity keep their input order.
func Analyze(performance []SubjectPerformance) []KnowledgeGap {
	gaps := make([]KnowledgeGap, 0, len(performance))

	for _, p := range performance {
		if p.TotalAttempts < MinReliableAttempts || p.Accuracy >= GapAccuracyThreshold {
			continue
		}
		gaps = append(gaps, KnowledgeGap{
			Subject:        p.Subject,
			Severity:       clamp(1-p.Accuracy, 0, 1),
			Recommendation: recommendationFor(p.Subject),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Severity > gaps[j].Severity
	})

	return gaps
}

func recommendationFor(subject string) string {
	return fmt.Sprintf("Prioritize scaffolded practice for %s with short retrieval quizzes.", subject)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
