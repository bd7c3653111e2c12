package cmd

import (
	"fmt"
	"os"

	"github.com/thinkle/deep/internal/api"
	"github.com/thinkle/deep/internal/app"
	"github.com/thinkle/deep/internal/identity"
	"github.com/thinkle/deep/internal/llm"
	"github.com/thinkle/deep/internal/reflect"
	"github.com/thinkle/deep/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	userID, err := identity.NewResolver(st.PrefsRepo()).Resolve(ctx)
	if err != nil {
		return fmt.Errorf("resolve identity: %w", err)
	}

	bank, err := reflect.LoadBank()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	var evaluator reflect.Evaluator = reflect.HeuristicEvaluator{}
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Feedback will use the built-in heuristic scorer.")
	} else {
		evaluator = reflect.NewLLMEvaluator(provider)
	}

	svc := reflect.NewService(bank, st, evaluator)

	// A remote backend, when configured, replaces the offline scorer
	// but leaves priming tracking local.
	var gateway api.Gateway = svc
	if base := os.Getenv("DEEP_API_URL"); base != "" {
		gateway = api.NewClient(base)
	}

	return app.Run(app.Options{
		Gateway:      gateway,
		Priming:      svc,
		ProgressRepo: st.ProgressRepo(),
		JournalRepo:  st.JournalRepo(),
		UserID:       userID,
	})
}
