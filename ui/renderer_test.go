package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/waltertaya/codelearn/client"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 99) + "bcdef"
	got := Truncate(long, DescriptionLimit)
	if got != strings.Repeat("a", 99)+"b..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if n := len([]rune(strings.TrimSuffix(got, "..."))); n != DescriptionLimit {
		t.Fatalf("expected %d characters before ellipsis, got %d", DescriptionLimit, n)
	}

	exact := strings.Repeat("x", DescriptionLimit)
	if got := Truncate(exact, DescriptionLimit); got != exact {
		t.Fatalf("string at the limit must be unchanged, got %q", got)
	}

	multibyte := strings.Repeat("é", 120)
	if got := Truncate(multibyte, DescriptionLimit); got != strings.Repeat("é", 100)+"..." {
		t.Fatalf("truncation must count characters, got %d runes", len([]rune(got)))
	}
}

func TestChallengesTruncatesDescriptions(t *testing.T) {
	var buf bytes.Buffer
	Challenges(&buf, []client.Challenge{
		{ID: 1, Title: "Two Sum", Difficulty: "Easy", Language: "python", Description: strings.Repeat("d", 150)},
		{ID: 2, Title: "Short", Difficulty: "Hard", Language: "go", Description: "tiny"},
	})
	out := buf.String()

	if !strings.Contains(out, "Available Challenges (2 found):") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Description: "+strings.Repeat("d", 100)+"...\n") {
		t.Fatalf("long description not truncated:\n%s", out)
	}
	if strings.Contains(out, strings.Repeat("d", 101)) {
		t.Fatalf("description longer than limit leaked:\n%s", out)
	}
	if !strings.Contains(out, "Description: tiny\n") {
		t.Fatalf("short description altered:\n%s", out)
	}
}

func TestLeaderboardAssignsLocalRanks(t *testing.T) {
	var buf bytes.Buffer
	Leaderboard(&buf, []client.LeaderboardEntry{
		{Username: "bob", TotalScore: 50, SubmissionsCount: 9, LastActivity: "2025-01-01 10:00:00"},
		{Username: "ada", TotalScore: 300, SubmissionsCount: 2, LastActivity: "2025-01-02 10:00:00"},
	})

	var rows [][]string
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 4 && (fields[1] == "bob" || fields[1] == "ada") {
			rows = append(rows, fields)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", len(rows), buf.String())
	}
	if rows[0][0] != "1" || rows[0][1] != "bob" || rows[0][2] != "50" || rows[0][3] != "9" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][0] != "2" || rows[1][1] != "ada" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}

func TestSubmissionResult(t *testing.T) {
	var buf bytes.Buffer
	SubmissionResult(&buf, &client.Submission{ID: 12, Status: "passed", Score: 100, Output: "All tests passed! Great job!"})
	out := buf.String()
	for _, want := range []string{"Submission ID: 12", "Status: passed", "Score: 100/100", "Output: All tests passed! Great job!"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestSubmissionsList(t *testing.T) {
	var buf bytes.Buffer
	Submissions(&buf, []client.Submission{
		{ID: 3, ChallengeTitle: "Two Sum", Language: "go", Status: "failed", Score: 40, CreatedAt: "2025-03-01T12:00:00Z"},
	})
	out := buf.String()
	for _, want := range []string{"Your Submissions (1 found):", "Challenge: Two Sum", "Score: 40/100", "Submitted: 2025-03-01T12:00:00Z"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestStylesFollowTheWriter(t *testing.T) {
	// a color-capable default renderer must not leak escapes into a plain writer
	t.Setenv("CLICOLOR_FORCE", "")
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	var buf bytes.Buffer
	Failure(&buf, "Failed to fetch leaderboard")
	Success(&buf, "Logged out successfully!")
	Submissions(&buf, []client.Submission{{ID: 1, Status: "passed"}})

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected ANSI escapes in redirected output: %q", out)
	}
	if !strings.HasPrefix(out, "✗ Failed to fetch leaderboard\n✓ Logged out successfully!\n") {
		t.Fatalf("unexpected output: %q", out)
	}
}
