package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/client"
	"github.com/waltertaya/codelearn/ui"
)

func newRegisterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <email> <password>",
		Short: "Create an account and log in",
		Long: `Create a CodeLearn account. On success you are logged in straight away
and the session is stored locally.

Example:
  codelearn register ada ada@example.com s3cret`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := client.Register(cmd.Context(), a.settings.APIURL(), a.store(), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			ui.Success(cmd.OutOrStdout(), fmt.Sprintf("Successfully registered and logged in as %s", cfg.Username))
			return nil
		},
	}
}
