package cmd

import (
	"context"
	"fmt"

	"github.com/thinkle/deep/internal/identity"
	"github.com/thinkle/deep/internal/progression"
	"github.com/thinkle/deep/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reflection progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		userID, err := identity.NewResolver(st.PrefsRepo()).Resolve(ctx)
		if err != nil {
			return fmt.Errorf("resolve identity: %w", err)
		}

		prog, err := st.ProgressRepo().Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		entries, err := st.JournalRepo().CountReflections(ctx, userID)
		if err != nil {
			return fmt.Errorf("count reflections: %w", err)
		}

		levelStats := progression.ComputeLevelStats(prog.XPTotal)

		fmt.Printf("User:         %s\n", userID)
		fmt.Printf("Level:        %d (%d/%d XP, %d%%)\n",
			levelStats.Level, levelStats.XPIntoLevel,
			progression.XPPerLevel, levelStats.ProgressPercent)
		fmt.Printf("Total XP:     %d\n", prog.XPTotal)
		fmt.Printf("Streak:       %d days\n", prog.Streak)
		fmt.Printf("Reflections:  %d\n", entries)
		fmt.Printf("This week:    %d of %d days\n", prog.CompletedDays, progression.WeekDays)
		if prog.BadgeEarned && prog.BadgeName != "" {
			fmt.Printf("Badge:        %s\n", prog.BadgeName)
		}
		if prog.LastAnsweredOn != "" {
			fmt.Printf("Last answer:  %s\n", prog.LastAnsweredOn)
		}
		return nil
	},
}
