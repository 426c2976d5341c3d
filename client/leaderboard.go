package client

import (
	"context"
	"net/http"

	"github.com/waltertaya/codelearn/internal/config"
)

// LeaderboardEntry is one row of the leaderboard, already ordered by the server.
type LeaderboardEntry struct {
	Username         string `json:"username"`
	TotalScore       int    `json:"total_score"`
	SubmissionsCount int    `json:"submissions"`
	LastActivity     string `json:"last_activity"`
}

func GetLeaderboard(ctx context.Context, cfg *config.Config, limit int) ([]LeaderboardEntry, error) {
	r, err := authorized(cfg, request{
		method: http.MethodGet,
		path:   "/leaderboard",
		query:  Page{Limit: limit}.query(),
		want:   http.StatusOK,
	})
	if err != nil {
		return nil, err
	}

	var res struct {
		Leaderboard []LeaderboardEntry `json:"leaderboard"`
	}
	if err := send(ctx, cfg.GetAPIURL(), r, &res); err != nil {
		return nil, err
	}
	return res.Leaderboard, nil
}
