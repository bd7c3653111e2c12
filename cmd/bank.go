package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/thinkle/deep/internal/progression"
	"github.com/thinkle/deep/internal/reflect"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Browse the question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all questions (optionally filtered by week)",
	RunE: func(cmd *cobra.Command, args []string) error {
		week, _ := cmd.Flags().GetInt("week")

		bank, err := reflect.LoadBank()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		// Header.
		fmt.Printf("%-14s  %-9s  %5s  %s\n", "ID", "Tier", "Timer", "Prompt")
		fmt.Println(strings.Repeat("─", 100))

		count := 0
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < bank.Size(); i++ {
			q := bank.QuestionFor(start.AddDate(0, 0, i))
			if week != 0 && q.WeekIndex+1 != week {
				continue
			}
			diff := progression.DifficultyForDay(q.DayIndex)
			prompt := q.Prompt
			if len(prompt) > 64 {
				prompt = prompt[:61] + "..."
			}
			fmt.Printf("%-14s  %-9s  %4ds  %s\n", q.ID, diff.Label, q.TimerSeconds, prompt)
			count++
		}

		fmt.Printf("\n%d questions\n", count)
		return nil
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the question served on a date (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if len(args) == 1 {
			parsed, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: use YYYY-MM-DD", args[0])
			}
			day = parsed
		}

		bank, err := reflect.LoadBank()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		q := bank.QuestionFor(day)
		diff := progression.DifficultyForDay(q.DayIndex)

		fmt.Printf("Date:    %s\n", day.Format("2006-01-02"))
		fmt.Printf("ID:      %s\n", q.ID)
		fmt.Printf("Theme:   %s\n", q.Theme)
		fmt.Printf("Tier:    %s (x%.2f)\n", diff.Label, diff.Multiplier)
		fmt.Printf("Timer:   %ds\n", q.TimerSeconds)
		fmt.Printf("\n%s\n", q.Prompt)

		if q.Priming != nil {
			fmt.Println("\nPriming:")
			if q.Priming.EmotionalHook != "" {
				fmt.Printf("  Hook:   %s\n", q.Priming.EmotionalHook)
			}
			if q.Priming.TeaserQuestion != "" {
				fmt.Printf("  Teaser: %s\n", q.Priming.TeaserQuestion)
			}
			if q.Priming.SomaticCue != "" {
				fmt.Printf("  Body:   %s\n", q.Priming.SomaticCue)
			}
			if q.Priming.CognitiveCue != "" {
				fmt.Printf("  Mind:   %s\n", q.Priming.CognitiveCue)
			}
		}
		return nil
	},
}

func init() {
	bankListCmd.Flags().Int("week", 0, "Filter by week number (1-based)")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankShowCmd)
}
