package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/waltertaya/codelearn/internal/config"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Login exchanges credentials for a token and persists the resulting session.
// Nothing is written unless the server answers 200.
func Login(ctx context.Context, apiURL string, store *config.Store, username, password string) (*config.Config, error) {
	var auth AuthResponse
	err := send(ctx, apiURL, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   LoginRequest{Username: username, Password: password},
		want:   http.StatusOK,
	}, &auth)
	if err != nil {
		return nil, err
	}
	return saveSession(store, apiURL, auth.Token, auth.User)
}

// Register creates an account and logs straight into it. The service answers 201.
func Register(ctx context.Context, apiURL string, store *config.Store, username, email, password string) (*config.Config, error) {
	var auth AuthResponse
	err := send(ctx, apiURL, request{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   RegisterRequest{Username: username, Email: email, Password: password},
		want:   http.StatusCreated,
	}, &auth)
	if err != nil {
		return nil, err
	}
	return saveSession(store, apiURL, auth.Token, auth.User)
}

// LoginWithToken stores a CLI token minted by the web app, after asking the
// service who it belongs to.
func LoginWithToken(ctx context.Context, apiURL string, store *config.Store, token string) (*config.Config, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}
	var user User
	err := send(ctx, apiURL, request{
		method: http.MethodGet,
		path:   "/profile",
		token:  token,
		want:   http.StatusOK,
	}, &user)
	if err != nil {
		return nil, err
	}
	return saveSession(store, apiURL, token, user)
}

func GetProfile(ctx context.Context, cfg *config.Config) (*User, error) {
	r, err := authorized(cfg, request{method: http.MethodGet, path: "/profile", want: http.StatusOK})
	if err != nil {
		return nil, err
	}
	var user User
	if err := send(ctx, cfg.GetAPIURL(), r, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func saveSession(store *config.Store, apiURL, token string, user User) (*config.Config, error) {
	if token == "" {
		return nil, &DecodeError{Err: errors.New("response carried no token")}
	}
	cfg := &config.Config{
		Token:    token,
		Username: user.Username,
		UserID:   user.ID,
		APIUrl:   apiURL,
	}
	if err := store.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
