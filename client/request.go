package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/waltertaya/codelearn/internal/config"
)

// ErrNotLoggedIn is returned before any request is made when no token is stored.
var ErrNotLoggedIn = errors.New("not logged in. Run 'codelearn login' first")

var httpClient = &http.Client{Timeout: 30 * time.Second}

var logger = log.New(io.Discard, "", 0)

// SetLogOutput routes one line per request to w. Pass io.Discard to silence it.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// APIError is a response whose status was not the one the endpoint promises.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the server message verbatim.
func (e *APIError) Error() string {
	return e.Message
}

// TransportError means no usable response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the server answered with the success status but the body
// was not what the endpoint returns.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected response from server: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RequireSession reports ErrNotLoggedIn when cfg holds no token.
func RequireSession(cfg *config.Config) error {
	if !cfg.LoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}

type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
	want   int
}

// send performs r against apiURL and decodes the body into out (if non-nil).
// Every error it returns is an *APIError, *TransportError or *DecodeError,
// except for failures building the request itself.
func send(ctx context.Context, apiURL string, r request, out any) error {
	endpoint := strings.TrimRight(apiURL, "/") + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var reader io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.token))
	}

	start := time.Now()
	res, err := httpClient.Do(req)
	if err != nil {
		logger.Printf("%s %s -> error: %v", r.method, endpoint, err)
		return &TransportError{Method: r.method, URL: endpoint, Err: err}
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Method: r.method, URL: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	logger.Printf("%s %s -> %d (%s)", r.method, endpoint, res.StatusCode, time.Since(start).Round(time.Millisecond))

	if res.StatusCode != r.want {
		return newAPIError(res.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	msg := "Unknown error"
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &APIError{StatusCode: status, Message: msg}
}

// authorized builds a request carrying the session token, or fails without
// touching the network when there is none.
func authorized(cfg *config.Config, r request) (request, error) {
	if err := RequireSession(cfg); err != nil {
		return r, err
	}
	r.token = cfg.Token
	return r, nil
}
