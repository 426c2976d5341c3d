package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/client"
	"github.com/waltertaya/codelearn/ui"
)

func newLeaderboardCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the leaderboard",
		Long: `Show the top users by total score, in the order the server ranks them.

Example:
  codelearn leaderboard --limit 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePage(client.Page{Limit: limit}); err != nil {
				return err
			}

			cfg, err := a.session()
			if err != nil {
				return err
			}

			entries, err := client.GetLeaderboard(cmd.Context(), cfg, limit)
			if err != nil {
				return fmt.Errorf("failed to fetch leaderboard: %w", err)
			}

			ui.Leaderboard(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of entries to show (server default when unset)")
	return cmd
}
