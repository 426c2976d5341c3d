package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/waltertaya/codelearn/client"
)

// palette holds the styles for one writer. The color profile is detected from
// that writer, so redirected stderr stays plain even when stdout is a terminal.
type palette struct {
	green, red, gray, cyan lipgloss.Style
}

func paletteFor(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		green: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		red:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		gray:  r.NewStyle().Foreground(lipgloss.Color("240")),
		cyan:  r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	}
}

// DescriptionLimit is how many characters of a description the list view shows.
const DescriptionLimit = 100

var rule = strings.Repeat("-", 80)

func Success(w io.Writer, msg string) {
	p := paletteFor(w)
	fmt.Fprintln(w, p.green.Render("✓ "+msg))
}

func Failure(w io.Writer, msg string) {
	p := paletteFor(w)
	fmt.Fprintln(w, p.red.Render("✗ "+msg))
}

func Hint(w io.Writer, msg string) {
	p := paletteFor(w)
	fmt.Fprintln(w, p.gray.Render(msg))
}

func heading(w io.Writer, title string) {
	p := paletteFor(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.cyan.Render("● ")+title)
	fmt.Fprintln(w, rule)
}

// Challenges prints the challenge list with descriptions shortened to DescriptionLimit.
func Challenges(w io.Writer, challenges []client.Challenge) {
	p := paletteFor(w)
	heading(w, fmt.Sprintf("Available Challenges (%d found):", len(challenges)))
	for _, c := range challenges {
		fmt.Fprintf(w, "ID: %d\n", c.ID)
		fmt.Fprintf(w, "Title: %s\n", c.Title)
		fmt.Fprintf(w, "Difficulty: %s\n", difficulty(p, c.Difficulty))
		fmt.Fprintf(w, "Language: %s\n", c.Language)
		fmt.Fprintf(w, "Description: %s\n", Truncate(c.Description, DescriptionLimit))
		fmt.Fprintln(w, rule)
	}
}

// Challenge prints every field of a single challenge.
func Challenge(w io.Writer, c *client.Challenge) {
	p := paletteFor(w)
	heading(w, fmt.Sprintf("%s (#%d)", c.Title, c.ID))
	fmt.Fprintf(w, "Difficulty: %s\n", difficulty(p, c.Difficulty))
	fmt.Fprintf(w, "Language: %s\n", c.Language)
	if c.CreatedAt != "" {
		fmt.Fprintf(w, "Created: %s\n", c.CreatedAt)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, c.Description)
	if c.TestCases != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.gray.Render("Test cases:"))
		fmt.Fprintln(w, p.gray.Render(c.TestCases))
	}
}

// SubmissionResult prints the outcome of a fresh submit.
func SubmissionResult(w io.Writer, s *client.Submission) {
	p := paletteFor(w)
	fmt.Fprintln(w)
	Success(w, "Solution submitted successfully!")
	fmt.Fprintf(w, "Submission ID: %d\n", s.ID)
	fmt.Fprintf(w, "Status: %s\n", status(p, s.Status))
	fmt.Fprintf(w, "Score: %d/100\n", s.Score)
	fmt.Fprintf(w, "Output: %s\n", s.Output)
}

func Submissions(w io.Writer, submissions []client.Submission) {
	p := paletteFor(w)
	heading(w, fmt.Sprintf("Your Submissions (%d found):", len(submissions)))
	for _, s := range submissions {
		fmt.Fprintf(w, "ID: %d\n", s.ID)
		fmt.Fprintf(w, "Challenge: %s\n", s.ChallengeTitle)
		fmt.Fprintf(w, "Language: %s\n", s.Language)
		fmt.Fprintf(w, "Status: %s\n", status(p, s.Status))
		fmt.Fprintf(w, "Score: %d/100\n", s.Score)
		fmt.Fprintf(w, "Submitted: %s\n", s.CreatedAt)
		fmt.Fprintln(w, rule)
	}
}

// Submission prints a single submission including its source.
func Submission(w io.Writer, s *client.Submission) {
	p := paletteFor(w)
	heading(w, fmt.Sprintf("Submission #%d", s.ID))
	if s.ChallengeTitle != "" {
		fmt.Fprintf(w, "Challenge: %s\n", s.ChallengeTitle)
	} else if s.ChallengeID != 0 {
		fmt.Fprintf(w, "Challenge: #%d\n", s.ChallengeID)
	}
	fmt.Fprintf(w, "Language: %s\n", s.Language)
	fmt.Fprintf(w, "Status: %s\n", status(p, s.Status))
	fmt.Fprintf(w, "Score: %d/100\n", s.Score)
	fmt.Fprintf(w, "Submitted: %s\n", s.CreatedAt)
	fmt.Fprintf(w, "Output: %s\n", s.Output)
	if s.Code != "" {
		fmt.Fprintln(w)
		for _, line := range strings.Split(strings.TrimRight(s.Code, "\n"), "\n") {
			fmt.Fprintln(w, p.gray.Render("  "+line))
		}
	}
}

// Leaderboard prints entries in the order given. Ranks are positions in that
// order, starting at 1.
func Leaderboard(w io.Writer, entries []client.LeaderboardEntry) {
	heading(w, fmt.Sprintf("Leaderboard (Top %d):", len(entries)))

	headers := []string{"Rank", "Username", "Score", "Submissions", "Last Activity"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Username,
			strconv.Itoa(e.TotalScore),
			strconv.Itoa(e.SubmissionsCount),
			e.LastActivity,
		})
	}

	lines := formatTable(headers, rows)
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(w, lines[0])
	fmt.Fprintln(w, rule)
	for _, line := range lines[1:] {
		fmt.Fprintln(w, line)
	}
}

func Profile(w io.Writer, u *client.User) {
	heading(w, u.Username)
	fmt.Fprintf(w, "User ID: %d\n", u.ID)
	if u.Email != "" {
		fmt.Fprintf(w, "Email: %s\n", u.Email)
	}
	if u.CreatedAt != "" {
		fmt.Fprintf(w, "Member since: %s\n", u.CreatedAt)
	}
}

// Truncate cuts s to limit characters and marks the cut with "...".
// Strings that already fit are returned unchanged.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func difficulty(p palette, d string) string {
	switch d {
	case "Easy":
		return p.green.Render(d)
	case "Medium":
		return p.cyan.Render(d)
	case "Hard":
		return p.red.Render(d)
	default:
		return d
	}
}

func status(p palette, s string) string {
	switch s {
	case "passed":
		return p.green.Render(s)
	case "failed":
		return p.red.Render(s)
	default:
		return p.gray.Render(s)
	}
}
