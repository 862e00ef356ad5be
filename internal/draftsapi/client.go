// Package draftsapi is a thin client for the portfolio drafts HTTP API.
package draftsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/portfolio-draft-seeder/internal/apperrors"
	"github.com/ndewijer/portfolio-draft-seeder/internal/model"
	"github.com/ndewijer/portfolio-draft-seeder/internal/timetoken"
)

// maxErrorBody caps how much of a failed response is copied into a StatusError.
const maxErrorBody = 4 << 10

// Client provides methods for creating portfolio drafts and submitting their portfolio step.
// Calls are synchronous; the caller's context bounds each request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new drafts API client.
//
// Parameters:
//   - baseURL: API root, e.g. "https://host/prod". A trailing slash is ignored.
//   - apiKey: Optional credentials. When set, every call carries X-API-Key and a fresh X-Time-Token.
//   - timeout: Per-request timeout; 0 leaves the http.Client default (no timeout).
//
// Returns:
//   - *Client: A new client instance ready for use
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// DraftsURL returns the collection URL drafts are created under.
func (c *Client) DraftsURL() string {
	return c.baseURL + "/portfolioDrafts"
}

// PortfolioStepURL returns the URL the portfolio step for draftID is posted to.
func (c *Client) PortfolioStepURL(draftID string) string {
	return c.DraftsURL() + "/" + url.PathEscape(draftID) + "/portfolio"
}

// CreatePortfolioDraft requests a new, empty portfolio draft.
//
// Returns:
//   - Response: The decoded draft; use Response.DraftID to obtain its id
//   - error: If the request fails, the status is not 2xx, or the body is not JSON
func (c *Client) CreatePortfolioDraft(ctx context.Context) (Response, error) {
	return c.post(ctx, c.DraftsURL(), nil)
}

// CreatePortfolioStep submits the portfolio step for an existing draft.
//
// Returns:
//   - Response: The API's answer, typically the stored step
//   - error: If encoding or the request fails, the status is not 2xx, or the body is not JSON
func (c *Client) CreatePortfolioStep(ctx context.Context, draftID string, step model.PortfolioStep) (Response, error) {
	if draftID == "" {
		return Response{}, apperrors.ErrEmptyID
	}
	body, err := json.Marshal(step)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode portfolio step: %w", err)
	}
	return c.post(ctx, c.PortfolioStepURL(draftID), body)
}

// post executes a POST and validates the answer. A nil body sends no payload.
func (c *Client) post(ctx context.Context, target string, body []byte) (Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, reader)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		tok, err := timetoken.Generate(c.apiKey)
		if err != nil {
			return Response{}, fmt.Errorf("failed to generate time token: %w", err)
		}
		req.Header.Set("X-API-Key", c.apiKey)
		req.Header.Set("X-Time-Token", tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response from %s: %w", target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		return Response{}, &StatusError{
			Method:     http.MethodPost,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if !json.Valid(data) {
		return Response{}, fmt.Errorf("%w: POST %s", apperrors.ErrInvalidJSON, target)
	}

	return Response{StatusCode: resp.StatusCode, Body: data}, nil
}
