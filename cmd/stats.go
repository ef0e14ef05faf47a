package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/storiz/internal/llm"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz performance and LLM usage",
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

		if len(performance) == 0 {
			fmt.Println("No quiz answers recorded yet.")
		} else {
			fmt.Println("Quiz Performance")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("%-20s  %8s  %8s\n", "Subject", "Attempts", "Accuracy")
			fmt.Println(strings.Repeat("─", 48))
			for _, p := range performance {
				fmt.Printf("%-20s  %8d  %7.0f%%\n", p.Subject, p.TotalAttempts, p.Accuracy*100)
			}
		}

		usage, err := s.EventRepo().LLMUsage(ctx)
		if err != nil {
			return fmt.Errorf("query LLM usage: %w", err)
		}
		if len(usage) == 0 {
			return nil
		}

		models := make([]string, 0, len(usage))
		for m := range usage {
			models = append(models, m)
		}
		sort.Strings(models)

		fmt.Println()
		fmt.Println("LLM Usage")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-32s  %8s  %8s  %8s  %9s\n", "Model", "Requests", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 72))

		var totalCost float64
		var unknownModels []string
		for _, m := range models {
			u := usage[m]
			cost := llm.LookupCost(m)
			costStr := "?"
			if cost != nil {
				c := cost.Cost(u.InputTokens, u.OutputTokens)
				totalCost += c
				costStr = formatCost(c)
			} else {
				unknownModels = append(unknownModels, m)
			}
			fmt.Printf("%-32s  %8d  %8d  %8d  %9s\n",
				truncate(m, 32), u.Requests, u.InputTokens, u.OutputTokens, costStr)
		}

		fmt.Println(strings.Repeat("─", 72))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %8s  %8s  %8s  %9s\n", label, "", "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
