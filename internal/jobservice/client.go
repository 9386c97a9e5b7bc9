// Package jobservice is the HTTP client for the generation Job Service. The
// orchestrator and the CLI talk to the service exclusively through this
// client.
package jobservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"startify/internal/domain"
	"startify/internal/infra"
)

// Options configures the Job Service client.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the Job Service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

// GenerateRequest is the submission payload.
type GenerateRequest struct {
	Email string `json:"email"`
	Idea  string `json:"idea"`
}

// GenerateResponse acknowledges a queued job.
type GenerateResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// StatusResponse reports job progress.
type StatusResponse struct {
	JobID    string `json:"job_id"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Error    string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("jobservice: base url is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Generate submits an idea and returns the queued job acknowledgement.
func (c *Client) Generate(ctx context.Context, email, idea string) (*GenerateResponse, error) {
	if strings.TrimSpace(idea) == "" {
		return nil, domain.ErrEmptyIdea
	}
	body, err := json.Marshal(GenerateRequest{Email: email, Idea: idea})
	if err != nil {
		return nil, fmt.Errorf("jobservice: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("jobservice: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out GenerateResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if out.JobID == "" {
		return nil, errors.New("jobservice: empty job id in response")
	}
	c.logger.Debug().Str("job_id", out.JobID).Msg("jobservice: job queued")
	return &out, nil
}

// Status fetches the current state of a job.
func (c *Client) Status(ctx context.Context, jobID string) (*StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/status/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("jobservice: build request: %w", err)
	}
	var out StatusResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Results fetches the completed generation result. The service answers 400
// while the job is still in flight and 404 for unknown ids.
func (c *Client) Results(ctx context.Context, jobID string) (*domain.GenerationResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/results/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("jobservice: build request: %w", err)
	}
	var out domain.GenerationResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Download streams the zipped document package for a completed job.
func (c *Client) Download(ctx context.Context, jobID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/download/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("jobservice: build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jobservice: http request: %w", err)
	}
	defer resp.Body.Close()
	if err := statusError(resp.StatusCode, nil); err != nil {
		raw, _ := io.ReadAll(resp.Body)
		return nil, decorate(err, raw)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("jobservice: read response: %w", err)
	}
	return data, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jobservice: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("jobservice: read response: %w", err)
	}
	if err := statusError(resp.StatusCode, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("jobservice: decode response: %w", err)
	}
	return nil
}

// statusError maps HTTP status codes onto the domain error taxonomy so
// callers can branch with errors.Is.
func statusError(code int, raw []byte) error {
	switch {
	case code < 300:
		return nil
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code == http.StatusBadRequest:
		var detail errorResponse
		if json.Unmarshal(raw, &detail) == nil && strings.Contains(detail.Error, "not completed") {
			return domain.ErrJobNotCompleted
		}
		return fmt.Errorf("jobservice: bad request: %s", strings.TrimSpace(string(raw)))
	case code >= 500:
		return fmt.Errorf("jobservice: %w: status %d", domain.ErrServiceUnavailable, code)
	default:
		return fmt.Errorf("jobservice: status %d: %s", code, strings.TrimSpace(string(raw)))
	}
}

func decorate(err error, raw []byte) error {
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, msg)
}
