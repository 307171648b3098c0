// Package clubapi implements the MatchProvider against the club's public
// calendar endpoint.
package clubapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"club-calendar-service/internal/category"
	"club-calendar-service/internal/domain"
	"club-calendar-service/internal/providers"
)

const defaultTimeout = 10 * time.Second

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the calendar API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches matches from the public calendar API and maps them to
// domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: resolveHTTPClient(cfg),
	}
}

// FetchMatches retrieves matches for the query window. An empty window fetches
// the full published set; bucket all omits the category parameter so the
// upstream returns every category.
func (c *Client) FetchMatches(ctx context.Context, q providers.Query) ([]domain.Match, error) {
	req, err := c.buildRequest(ctx, q)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload domain.CalendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, providers.ErrAPIFailure
	}

	matches := make([]domain.Match, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		matches = append(matches, normalize(m))
	}
	return matches, nil
}

func (c *Client) buildRequest(ctx context.Context, q providers.Query) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	params := req.URL.Query()
	if q.From != "" {
		params.Set("from", q.From)
	}
	if q.To != "" {
		params.Set("to", q.To)
	}
	if q.Category != "" && q.Category != category.All {
		params.Set("category", string(q.Category))
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// normalize fills implicit defaults without touching upstream values the
// renderers pass through verbatim.
func normalize(m domain.Match) domain.Match {
	if m.Status == "" {
		m.Status = domain.StatusPlanned
	}
	return m
}

func resolveHTTPClient(cfg Config) httpDoer {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
