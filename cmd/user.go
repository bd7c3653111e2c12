package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thinkle/deep/internal/identity"
	"github.com/thinkle/deep/internal/store"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show which user id progress is recorded under",
	Long:  "Show the identifier used for progress and journal entries. A guest id is minted on first run; `deep user set` links an account id on top of it, and the DEEP_USER environment variable overrides both for one invocation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openUserStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		userID, err := identity.NewResolver(st.PrefsRepo()).Resolve(ctx)
		if err != nil {
			return fmt.Errorf("resolve identity: %w", err)
		}

		fmt.Println(userID)
		switch {
		case strings.TrimSpace(os.Getenv(identity.EnvUser)) != "":
			fmt.Println("(from the DEEP_USER environment variable)")
		case mustPref(ctx, st, identity.AuthKey) != "":
			fmt.Println("(linked account id)")
		default:
			fmt.Println("(guest id, generated on first run)")
		}
		return nil
	},
}

var userSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Link an account id",
	Long:  "Link an account id. The guest id stays stored, so `deep user clear` restores the original history.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		if id == "" {
			return fmt.Errorf("id cannot be empty")
		}

		st, err := openUserStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		if err := identity.NewResolver(st.PrefsRepo()).SetAuthenticated(ctx, id); err != nil {
			return fmt.Errorf("link account id: %w", err)
		}
		fmt.Printf("Linked. Progress now records under %s.\n", id)
		return nil
	},
}

var userClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Unlink the account id and return to the guest id",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openUserStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		r := identity.NewResolver(st.PrefsRepo())
		if err := r.ClearAuthenticated(ctx); err != nil {
			return fmt.Errorf("unlink account id: %w", err)
		}
		guest, err := r.Resolve(ctx)
		if err != nil {
			return fmt.Errorf("resolve identity: %w", err)
		}
		fmt.Printf("Unlinked. Back to guest id %s.\n", guest)
		return nil
	},
}

func openUserStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func mustPref(ctx context.Context, st *store.Store, key string) string {
	v, _ := st.PrefsRepo().GetPref(ctx, key)
	return v
}

func init() {
	userCmd.AddCommand(userSetCmd)
	userCmd.AddCommand(userClearCmd)
}
