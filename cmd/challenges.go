package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/client"
	"github.com/waltertaya/codelearn/ui"
)

func newChallengesCmd(a *app) *cobra.Command {
	var filter client.ChallengeFilter

	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "List available challenges",
		Long: `List the challenges you can solve, optionally filtered by difficulty
and language. Descriptions are shortened; use 'codelearn challenge <id>'
to read one in full.

Examples:
  codelearn challenges
  codelearn challenges --difficulty Easy --language python`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filter.Difficulty != "" && !client.ValidDifficulty(filter.Difficulty) {
				return fmt.Errorf("invalid difficulty %q: choose from %s", filter.Difficulty, strings.Join(client.Difficulties, ", "))
			}
			if err := validatePage(filter.Page); err != nil {
				return err
			}

			cfg, err := a.session()
			if err != nil {
				return err
			}

			challenges, err := client.ListChallenges(cmd.Context(), cfg, filter)
			if err != nil {
				return fmt.Errorf("failed to fetch challenges: %w", err)
			}

			ui.Challenges(cmd.OutOrStdout(), challenges)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&filter.Difficulty, "difficulty", "", "filter by difficulty (Easy, Medium, Hard)")
	flags.StringVar(&filter.Language, "language", "", "filter by programming language")
	flags.IntVar(&filter.Limit, "limit", 0, "maximum number of challenges to list")
	flags.IntVar(&filter.Offset, "offset", 0, "number of challenges to skip")
	return cmd
}

func newChallengeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "challenge <challenge-id>",
		Short: "Show one challenge in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "challenge")
			if err != nil {
				return err
			}

			cfg, err := a.session()
			if err != nil {
				return err
			}

			challenge, err := client.GetChallenge(cmd.Context(), cfg, id)
			if err != nil {
				return fmt.Errorf("failed to fetch challenge: %w", err)
			}

			ui.Challenge(cmd.OutOrStdout(), challenge)
			return nil
		},
	}
}
