package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/client"
	"github.com/waltertaya/codelearn/ui"
)

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your account details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.session()
			if err != nil {
				return err
			}

			user, err := client.GetProfile(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to fetch profile: %w", err)
			}

			ui.Profile(cmd.OutOrStdout(), user)
			return nil
		},
	}
}
