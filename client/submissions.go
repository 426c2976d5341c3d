package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/waltertaya/codelearn/internal/config"
)

type Submission struct {
	ID             int    `json:"id"`
	ChallengeID    int    `json:"challenge_id,omitempty"`
	ChallengeTitle string `json:"challenge_title"`
	Language       string `json:"language"`
	Status         string `json:"status"` // pending, passed, failed
	Score          int    `json:"score"`
	Output         string `json:"output"`
	Code           string `json:"code,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func ListSubmissions(ctx context.Context, cfg *config.Config, page Page) ([]Submission, error) {
	r, err := authorized(cfg, request{
		method: http.MethodGet,
		path:   "/submissions",
		query:  page.query(),
		want:   http.StatusOK,
	})
	if err != nil {
		return nil, err
	}

	var res struct {
		Submissions []Submission `json:"submissions"`
	}
	if err := send(ctx, cfg.GetAPIURL(), r, &res); err != nil {
		return nil, err
	}
	return res.Submissions, nil
}

func GetSubmission(ctx context.Context, cfg *config.Config, id int) (*Submission, error) {
	r, err := authorized(cfg, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/submissions/%d", id),
		want:   http.StatusOK,
	})
	if err != nil {
		return nil, err
	}

	var submission Submission
	if err := send(ctx, cfg.GetAPIURL(), r, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}
