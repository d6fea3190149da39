// Package client is a small Go client for the wallpaper generation API. It
// submits requests, reads status, downloads artifacts, and polls a generation
// to completion.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ErrPollTimeout is returned by Poll when the generation does not reach a
// terminal state within the allowed window.
var ErrPollTimeout = errors.New("polling timed out before generation finished")

// GenerateRequest is the payload for POST /generate.
type GenerateRequest struct {
	Description string `json:"description"`
	Genre       string `json:"genre,omitempty"`
	ArtStyle    string `json:"art_style,omitempty"`
	UserID      string `json:"user_id,omitempty"`
}

// Generation is the server's view of one generation job.
type Generation struct {
	GenerationID uuid.UUID  `json:"generation_id"`
	Status       string     `json:"status"`
	Progress     int        `json:"progress"`
	ImageURL     string     `json:"image_url,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Client talks to one wallpaper API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the server at baseURL, e.g. "http://localhost:8000".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Generate submits a generation request and returns the new generation id.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (uuid.UUID, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp struct {
		GenerationID uuid.UUID `json:"generation_id"`
	}
	if err := c.do(httpReq, http.StatusCreated, &resp); err != nil {
		return uuid.Nil, err
	}
	return resp.GenerationID, nil
}

// Status fetches the current state of a generation.
func (c *Client) Status(ctx context.Context, id uuid.UUID) (*Generation, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/status/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var gen Generation
	if err := c.do(httpReq, http.StatusOK, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// Download fetches the finished wallpaper bytes. The generation must be
// completed; the server answers 409 otherwise.
func (c *Client) Download(ctx context.Context, id uuid.UUID) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/download/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}
	return io.ReadAll(resp.Body)
}

// PollOptions tunes the Poll loop. Zero values get sensible defaults.
type PollOptions struct {
	Interval time.Duration // between status requests, default 2s
	MaxWait  time.Duration // total budget, default 5m
	// OnProgress, when set, is called after every status response.
	OnProgress func(*Generation)
}

// Poll requests status on an interval until the generation reaches a terminal
// state. It returns the completed generation, an error carrying the server's
// error_message if the generation failed, or ErrPollTimeout when MaxWait (or
// ctx) expires first.
func (c *Client) Poll(ctx context.Context, id uuid.UUID, opts PollOptions) (*Generation, error) {
	if opts.Interval <= 0 {
		opts.Interval = 2 * time.Second
	}
	if opts.MaxWait <= 0 {
		opts.MaxWait = 5 * time.Minute
	}

	ctx, cancel := context.WithTimeout(ctx, opts.MaxWait)
	defer cancel()

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		gen, err := c.Status(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ErrPollTimeout
			}
			return nil, err
		}
		if opts.OnProgress != nil {
			opts.OnProgress(gen)
		}

		switch gen.Status {
		case "completed":
			return gen, nil
		case "failed":
			return nil, fmt.Errorf("generation failed: %s", gen.ErrorMessage)
		}

		select {
		case <-ctx.Done():
			return nil, ErrPollTimeout
		case <-ticker.C:
		}
	}
}

// do executes the request, decodes a success body into out, and turns any
// other status into an *APIError.
func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Code: "UNKNOWN"}

	var env struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error.Code != "" {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	return apiErr
}
