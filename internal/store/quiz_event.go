package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/storiz/ent"
	"github.com/abhisek/storiz/internal/insights"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSubject(data.Subject).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SubjectPerformances(ctx context.Context) ([]insights.SubjectPerformance, error) {
	events, err := r.client.QuizAnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz answers: %w", err)
	}

	type tally struct {
		attempts int
		correct  int
	}
	bySubject := make(map[string]*tally)
	for _, e := range events {
		t := bySubject[e.Subject]
		if t == nil {
			t = &tally{}
			bySubject[e.Subject] = t
		}
		t.attempts++
		if e.Correct {
			t.correct++
		}
	}

	perf := make([]insights.SubjectPerformance, 0, len(bySubject))
	for subject, t := range bySubject {
		perf = append(perf, insights.SubjectPerformance{
			Subject:       subject,
			Accuracy:      float64(t.correct) / float64(t.attempts),
			TotalAttempts: t.attempts,
		})
	}

	// Map iteration order is random; the gap analyzer's tie-break is
	// input order, so give it something deterministic.
	sort.Slice(perf, func(i, j int) bool {
		return perf[i].Subject < perf[j].Subject
	})

	return perf, nil
}
