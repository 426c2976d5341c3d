package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/waltertaya/codelearn/internal/config"
)

// Difficulties lists the values the service accepts for the difficulty filter.
var Difficulties = []string{"Easy", "Medium", "Hard"}

func ValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if v == d {
			return true
		}
	}
	return false
}

type Challenge struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	Language    string `json:"language"`
	Description string `json:"description"`
	TestCases   string `json:"test_cases,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// ChallengeFilter narrows the challenge list. Zero fields are not sent.
type ChallengeFilter struct {
	Difficulty string
	Language   string
	Page
}

func (f ChallengeFilter) query() url.Values {
	q := f.Page.query()
	if f.Difficulty != "" {
		q.Set("difficulty", f.Difficulty)
	}
	if f.Language != "" {
		q.Set("language", f.Language)
	}
	return q
}

// Page selects a window of a list endpoint. Zero fields are not sent.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) query() url.Values {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	return q
}

type SubmissionRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

func ListChallenges(ctx context.Context, cfg *config.Config, filter ChallengeFilter) ([]Challenge, error) {
	r, err := authorized(cfg, request{
		method: http.MethodGet,
		path:   "/challenges",
		query:  filter.query(),
		want:   http.StatusOK,
	})
	if err != nil {
		return nil, err
	}

	var res struct {
		Challenges []Challenge `json:"challenges"`
	}
	if err := send(ctx, cfg.GetAPIURL(), r, &res); err != nil {
		return nil, err
	}
	return res.Challenges, nil
}

func GetChallenge(ctx context.Context, cfg *config.Config, id int) (*Challenge, error) {
	r, err := authorized(cfg, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/challenges/%d", id),
		want:   http.StatusOK,
	})
	if err != nil {
		return nil, err
	}

	var challenge Challenge
	if err := send(ctx, cfg.GetAPIURL(), r, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// SubmitSolution posts code for grading. The service grades synchronously and
// answers 201 with the stored submission.
func SubmitSolution(ctx context.Context, cfg *config.Config, id int, code, language string) (*Submission, error) {
	r, err := authorized(cfg, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/challenges/%d/submit", id),
		body:   SubmissionRequest{Code: code, Language: language},
		want:   http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}

	var res struct {
		Message    string     `json:"message"`
		Submission Submission `json:"submission"`
	}
	if err := send(ctx, cfg.GetAPIURL(), r, &res); err != nil {
		return nil, err
	}
	return &res.Submission, nil
}
