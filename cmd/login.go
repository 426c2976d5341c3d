package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/client"
	"github.com/waltertaya/codelearn/internal/config"
	"github.com/waltertaya/codelearn/ui"
)

var openBrowser = browser.OpenURL

func newLoginCmd(a *app) *cobra.Command {
	var web bool

	cmd := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and store your token locally",
		Long: `Log in to CodeLearn with your username and password.

Your token is stored in ~/.codelearn/config.json and sent with every
later command. Logging in again replaces the stored session.

With --web, your browser opens the CodeLearn site where you can create a
CLI token; paste it back here instead of typing a password.

Examples:
  codelearn login ada s3cret
  codelearn login --web`,
		Args: func(cmd *cobra.Command, args []string) error {
			if web {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if web {
				cfg, err = a.loginWithBrowser(cmd)
			} else {
				cfg, err = client.Login(cmd.Context(), a.settings.APIURL(), a.store(), args[0], args[1])
			}
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			ui.Success(cmd.OutOrStdout(), fmt.Sprintf("Successfully logged in as %s", cfg.Username))
			return nil
		},
	}

	cmd.Flags().BoolVar(&web, "web", false, "log in through the browser with a CLI token")
	return cmd
}

func (a *app) loginWithBrowser(cmd *cobra.Command) (*config.Config, error) {
	out := cmd.OutOrStdout()
	authURL := strings.TrimRight(a.settings.WebURL(), "/") + "/cli-auth"

	fmt.Fprintf(out, "Opening browser for CLI token at %s...\n", authURL)
	if err := openBrowser(authURL); err != nil {
		ui.Hint(out, "Could not open a browser. Visit the URL above to create a token.")
	}

	fmt.Fprintln(out, "Paste your CLI token here:")
	token, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	return client.LoginWithToken(cmd.Context(), a.settings.APIURL(), a.store(), strings.TrimSpace(token))
}
