package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/ui"
)

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear local credentials",
		Long: `Remove the stored session from this machine.

The service has no server-side logout, so your token simply stops being
sent. Run 'codelearn login' to authenticate again.

Example:
  codelearn logout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.store()
			// a malformed file is still cleared
			cfg, err := store.Load()
			if err == nil && !cfg.LoggedIn() {
				fmt.Fprintln(cmd.OutOrStdout(), "Already logged out")
				return nil
			}

			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear credentials: %w", err)
			}

			ui.Success(cmd.OutOrStdout(), "Logged out successfully!")
			return nil
		},
	}
}
