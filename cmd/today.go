package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Open today's reflection",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	// Context for provider initialization.
	todayCmd.SetContext(context.Background())
}
