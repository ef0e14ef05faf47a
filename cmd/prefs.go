package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/storiz/internal/prefs"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage story preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current story preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		p, saved, err := prefs.NewManager(s.SnapshotRepo()).Load(ctx)
		if err != nil {
			return fmt.Errorf("load preferences: %w", err)
		}

		if !saved {
			fmt.Println("No saved preferences (showing defaults).")
		}
		topics := "(none)"
		if len(p.Topics) > 0 {
			topics = strings.Join(p.Topics, ", ")
		}
		fmt.Printf("Topics:          %s\n", topics)
		fmt.Printf("Reading level:   %d\n", p.ReadingLevel)
		fmt.Printf("Session minutes: %d\n", p.SessionMinutes)
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update story preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		m := prefs.NewManager(s.SnapshotRepo())

		p, _, err := m.Load(ctx)
		if err != nil {
			return fmt.Errorf("load preferences: %w", err)
		}

		if cmd.Flags().Changed("topics") {
			topics, _ := cmd.Flags().GetStringSlice("topics")
			p.Topics = topics
		}
		if cmd.Flags().Changed("reading-level") {
			p.ReadingLevel, _ = cmd.Flags().GetInt("reading-level")
		}
		if cmd.Flags().Changed("session-minutes") {
			p.SessionMinutes, _ = cmd.Flags().GetInt("session-minutes")
		}

		if err := m.Save(ctx, p); err != nil {
			return fmt.Errorf("save preferences: %w", err)
		}

		fmt.Println("Preferences saved.")
		return nil
	},
}

var prefsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import preferences from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		p, err := prefs.ParseFile(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		if err := prefs.NewManager(s.SnapshotRepo()).Save(ctx, p); err != nil {
			return fmt.Errorf("save preferences: %w", err)
		}

		fmt.Println("Preferences imported.")
		return nil
	},
}

func init() {
	prefsSetCmd.Flags().StringSlice("topics", nil, "Favorite topics, most preferred first")
	prefsSetCmd.Flags().Int("reading-level", 0, "Reading level (0 and up)")
	prefsSetCmd.Flags().Int("session-minutes", 10, "Target reading session length in minutes")

	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsImportCmd)
}
