package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/client"
	"github.com/waltertaya/codelearn/ui"
)

const timeLayout = "2006-01-02 15:04:05"

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Long: `Show who you are logged in as, which API the CLI talks to, and when the
stored token expires. Nothing is sent to the server.

Example:
  codelearn status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.session()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ui.Success(out, fmt.Sprintf("Logged in as %s (user id %d)", cfg.Username, cfg.UserID))
			fmt.Fprintf(out, "API: %s\n", cfg.GetAPIURL())
			fmt.Fprintf(out, "Config: %s\n", a.store().Path())

			claims, err := client.ParseToken(cfg.Token)
			if err != nil || claims.ExpiresAt == nil {
				fmt.Fprintln(out, "Token expiry: unknown")
				return nil
			}

			expiry := claims.ExpiresAt.Time
			if time.Now().After(expiry) {
				ui.Failure(out, fmt.Sprintf("Token expired at %s. Run 'codelearn login' again.", expiry.Local().Format(timeLayout)))
				return nil
			}
			fmt.Fprintf(out, "Token expires: %s\n", expiry.Local().Format(timeLayout))
			return nil
		},
	}
}
