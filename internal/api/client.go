// Package api is a client for the analysis backend's read endpoints.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/abhisek/testlens/internal/analysis"
	"github.com/abhisek/testlens/internal/logger"
)

// ErrUnauthorized is returned for HTTP 401 responses.
var ErrUnauthorized = errors.New("unauthorized: check the API token")

// Error is a non-2xx response carrying the backend's envelope.
type Error struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("analysis backend: HTTP %d", e.Status)
	}
	return fmt.Sprintf("analysis backend: HTTP %d: %s", e.Status, e.Message)
}

type Options struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
	RetryMax int
	Log      *logger.Logger
}

type Client struct {
	base  string
	token string
	http  *retryablehttp.Client
}

// New builds a client for the backend rooted at <endpoint>/api.
func New(opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(opts.Endpoint, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q", opts.Endpoint)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = opts.Timeout
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = opts.Log
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{base: u.String() + "/api", token: opts.Token, http: rc}, nil
}

// get fetches path and returns the raw body of a 2xx response.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 300:
		apiErr := &Error{Status: resp.StatusCode}
		_ = json.Unmarshal(body, apiErr)
		return nil, apiErr
	}
	return body, nil
}

func fetch[T any](ctx context.Context, c *Client, kind analysis.Kind, path, key, id string) (T, error) {
	var zero T
	raw, err := c.get(ctx, path, url.Values{key: {id}})
	if err != nil {
		return zero, err
	}
	return analysis.Decode[T](kind, raw)
}

func (c *Client) Questions(ctx context.Context, projectID string) ([]analysis.QuestionAnalysis, error) {
	return fetch[[]analysis.QuestionAnalysis](ctx, c, analysis.KindQuestions, "/questions", "projectId", projectID)
}

// Question fetches a single question; the backend wraps it in a one-element list.
func (c *Client) Question(ctx context.Context, questionID string) (analysis.QuestionAnalysis, error) {
	qs, err := fetch[[]analysis.QuestionAnalysis](ctx, c, analysis.KindQuestions, "/question", "questionId", questionID)
	if err != nil {
		return analysis.QuestionAnalysis{}, err
	}
	if len(qs) == 0 {
		return analysis.QuestionAnalysis{}, &Error{Status: http.StatusNotFound, Message: "question " + questionID + " not found"}
	}
	return qs[0], nil
}

func (c *Client) Options(ctx context.Context, questionID string) ([]analysis.OptionAnalysis, error) {
	return fetch[[]analysis.OptionAnalysis](ctx, c, analysis.KindOptions, "/options", "questionId", questionID)
}

func (c *Client) GeneralDetails(ctx context.Context, projectID string) (analysis.GeneralDetails, error) {
	return fetch[analysis.GeneralDetails](ctx, c, analysis.KindDetails, "/general-details", "projectId", projectID)
}

func (c *Client) Histogram(ctx context.Context, projectID string) (analysis.Histogram, error) {
	return fetch[analysis.Histogram](ctx, c, analysis.KindHistogram, "/histogram", "projectId", projectID)
}

func (c *Client) RaschAnalysis(ctx context.Context, projectID string) ([]analysis.RaschQuestion, error) {
	return fetch[[]analysis.RaschQuestion](ctx, c, analysis.KindRasch, "/rasch-analysis", "projectId", projectID)
}

func (c *Client) Students(ctx context.Context, projectID string) ([]analysis.Student, error) {
	return fetch[[]analysis.Student](ctx, c, analysis.KindStudents, "/students", "projectId", projectID)
}
