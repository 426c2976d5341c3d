package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/client"
	"github.com/waltertaya/codelearn/internal/config"
	"github.com/waltertaya/codelearn/ui"
)

// app carries what every command needs: where settings come from and whether
// requests are logged.
type app struct {
	settings *config.Settings
	verbose  bool
}

func newRootCmd() *cobra.Command {
	a := &app{settings: config.NewSettings()}

	rootCmd := &cobra.Command{
		Use:   "codelearn",
		Short: "Code locally, learn globally",
		Long: `codelearn - submit your code solutions straight from your terminal

List coding challenges, submit solution files for grading, and follow your
submissions and the leaderboard without leaving your editor.

Quick Start:
  1. Create an account:  codelearn register <username> <email> <password>
  2. Browse challenges:  codelearn challenges --difficulty Easy
  3. Submit a solution:  codelearn submit <challenge-id> solution.py
  4. See how you rank:   codelearn leaderboard`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				client.SetLogOutput(cmd.ErrOrStderr())
			} else {
				client.SetLogOutput(io.Discard)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", config.DefaultAPIURL, "CodeLearn API base URL (env CODELEARN_API_URL)")
	flags.String("config-dir", config.DefaultDir(), "directory holding config.json (env CODELEARN_CONFIG_DIR)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log every HTTP request to stderr")
	if err := a.settings.BindFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newStatusCmd(a),
		newProfileCmd(a),
		newChallengesCmd(a),
		newChallengeCmd(a),
		newSubmitCmd(a),
		newSubmissionsCmd(a),
		newSubmissionCmd(a),
		newLeaderboardCmd(a),
	)
	return rootCmd
}

func Execute() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs one command and returns the process exit status.
func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Failure(errOut, err.Error())
		return 1
	}
	return 0
}

func (a *app) store() *config.Store {
	return a.settings.Store()
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := a.store().Load()
	if err != nil {
		return nil, fmt.Errorf("could not load config file: %w", err)
	}
	cfg.APIUrl = a.settings.APIURL()
	return cfg, nil
}

// session loads the stored config and fails with client.ErrNotLoggedIn when it
// has no token.
func (a *app) session() (*config.Config, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := client.RequireSession(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
