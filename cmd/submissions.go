package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/waltertaya/codelearn/client"
	"github.com/waltertaya/codelearn/ui"
)

func newSubmissionsCmd(a *app) *cobra.Command {
	var page client.Page

	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "List your submissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePage(page); err != nil {
				return err
			}

			cfg, err := a.session()
			if err != nil {
				return err
			}

			submissions, err := client.ListSubmissions(cmd.Context(), cfg, page)
			if err != nil {
				return fmt.Errorf("failed to fetch submissions: %w", err)
			}

			ui.Submissions(cmd.OutOrStdout(), submissions)
			return nil
		},
	}

	cmd.Flags().IntVar(&page.Limit, "limit", 0, "maximum number of submissions to list")
	cmd.Flags().IntVar(&page.Offset, "offset", 0, "number of submissions to skip")
	return cmd
}

func newSubmissionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "submission <submission-id>",
		Short: "Show one of your submissions with its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "submission")
			if err != nil {
				return err
			}

			cfg, err := a.session()
			if err != nil {
				return err
			}

			submission, err := client.GetSubmission(cmd.Context(), cfg, id)
			if err != nil {
				return fmt.Errorf("failed to fetch submission: %w", err)
			}

			ui.Submission(cmd.OutOrStdout(), submission)
			return nil
		},
	}
}
