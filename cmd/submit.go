package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/client"
	"github.com/waltertaya/codelearn/internal/config"
	"github.com/waltertaya/codelearn/ui"
)

func newSubmitCmd(a *app) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "submit <challenge-id> <file>",
		Short: "Submit a solution file for grading",
		Long: `Submit a solution file to a challenge. The file is sent as-is and graded
by the server; the result is printed once grading finishes.

The language is detected from the file extension (.py, .js, .go, .cs, .c,
.cpp, .rs) and falls back to python. Use --language to override it.

Examples:
  codelearn submit 1 two_sum.py
  codelearn submit 3 solution.txt --language go`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "challenge")
			if err != nil {
				return err
			}
			path := args[1]

			cfg, err := a.session()
			if err != nil {
				return err
			}

			code, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("file not found: %s", path)
				}
				return fmt.Errorf("error reading file: %w", err)
			}

			if language == "" {
				language = config.DetectLanguage(path)
			}

			challenge, err := client.GetChallenge(cmd.Context(), cfg, id)
			if err != nil {
				return fmt.Errorf("failed to fetch challenge: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Submitting solution for: %s\n", challenge.Title)
			fmt.Fprintf(out, "Language: %s\n", language)
			fmt.Fprintf(out, "File: %s\n", path)

			submission, err := client.SubmitSolution(cmd.Context(), cfg, id, string(code), language)
			if err != nil {
				return fmt.Errorf("submission failed: %w", err)
			}

			ui.SubmissionResult(out, submission)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "programming language (auto-detected if not specified)")
	return cmd
}
