package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thinkle/deep/internal/identity"
	"github.com/thinkle/deep/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset progress (XP, streak, badges)",
	Long:  "Reset clears XP, streak and badge progress for the current user. Journal entries are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This clears your XP, streak and badges. Journal entries are kept. Continue? [y/N] ")
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() {
				return nil
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

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

		if err := st.ProgressRepo().Delete(ctx, userID); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Println("Progress reset. Your journal is untouched.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
