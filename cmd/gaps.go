package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/storiz/internal/insights"
	"github.com/abhisek/storiz/internal/report"
	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Show knowledge gaps from quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		performance, err := s.EventRepo().SubjectPerformances(ctx)
		if err != nil {
			return fmt.Errorf("aggregate quiz history: %w", err)
		}

		gaps := insights.Analyze(performance)
		fmt.Print(report.Gaps(gaps))
		return nil
	},
}
