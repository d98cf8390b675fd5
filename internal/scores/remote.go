package scores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Envelope is the response body of every scores service endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ErrRejected is returned when the service answers with success=false.
var ErrRejected = errors.New("scores: rejected by server")

// Remote is the authoritative score store.
type Remote interface {
	Submit(ctx context.Context, s Submission) (RunResult, error)
	Top(ctx context.Context, limit int) ([]RunResult, error)
	Ping(ctx context.Context) error
}

// Client talks to the scores service over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given scores endpoint, e.g.
// http://localhost:3000/api/scores. A zero timeout leaves requests bounded
// only by their context.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("scores: invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("scores: endpoint %q must be http or https", endpoint)
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// Submit posts a run and returns the record the service stored.
func (c *Client) Submit(ctx context.Context, s Submission) (RunResult, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return RunResult{}, fmt.Errorf("scores: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return RunResult{}, fmt.Errorf("scores: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req)
	if err != nil {
		return RunResult{}, err
	}

	rec := RunResult{PlayerName: s.PlayerName, Score: s.Score, Level: s.Level}
	if len(data) == 0 || string(data) == "null" {
		return rec, nil
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return RunResult{}, fmt.Errorf("scores: decode record: %w", err)
	}
	return rec, nil
}

// Top fetches the leaderboard, highest score first.
func (c *Client) Top(ctx context.Context, limit int) ([]RunResult, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("scores: invalid endpoint: %w", err)
	}
	if limit > 0 {
		q := u.Query()
		q.Set("limit", strconv.Itoa(limit))
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("scores: build request: %w", err)
	}

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var list []RunResult
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("scores: decode leaderboard: %w", err)
	}
	return list, nil
}

// Ping checks that the endpoint answers a GET with a 2xx status.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("scores: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("scores: ping: %w", err)
	}
	defer resp.Body.Close()
	//nolint:errcheck // Drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("scores: ping: server returned %d", resp.StatusCode)
	}
	return nil
}

// do sends req and unwraps the envelope, returning its data on success.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scores: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("scores: server returned %d", resp.StatusCode)
	}

	var env Envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&env); err != nil {
		return nil, fmt.Errorf("scores: decode response: %w", err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, msg)
	}
	return env.Data, nil
}
