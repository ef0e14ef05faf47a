package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/storiz/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Record quiz answers",
}

var quizRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record one answered quiz question",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		correct, _ := cmd.Flags().GetBool("correct")
		timeMs, _ := cmd.Flags().GetInt("time-ms")
		sessionID, _ := cmd.Flags().GetString("session")

		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		err = s.EventRepo().AppendQuizAnswer(ctx, store.QuizAnswerEventData{
			SessionID: sessionID,
			Subject:   subject,
			Correct:   correct,
			TimeMs:    timeMs,
		})
		if err != nil {
			return fmt.Errorf("record answer: %w", err)
		}

		fmt.Printf("Recorded %s answer for %q (session %s)\n", correctWord(correct), subject, sessionID)
		return nil
	},
}

func correctWord(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}

func init() {
	quizRecordCmd.Flags().String("subject", "", "Subject the question belongs to (required)")
	quizRecordCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	quizRecordCmd.Flags().Int("time-ms", 0, "Time taken to answer, in milliseconds")
	quizRecordCmd.Flags().String("session", "", "Session ID (a new one is generated if empty)")
	_ = quizRecordCmd.MarkFlagRequired("subject")

	quizCmd.AddCommand(quizRecordCmd)
}
