package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/timeutil"
)

// Config controls how the scoreboard client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client fetches a day's events per sport from the upstream scoreboard and
// maps them to the canonical event shape.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Name returns the provider identifier used in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchDay retrieves the scoreboard for one sport and calendar day. An
// off-day yields an empty slice; any transport or decode problem yields an
// error so callers can distinguish "confirmed no games" from "could not ask".
func (c *Client) FetchDay(ctx context.Context, sport domain.Sport, day time.Time) ([]domain.Event, error) {
	route, ok := sportRoutes[sport]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSport, sport)
	}

	req, err := c.buildRequest(ctx, route, day)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	events := make([]domain.Event, 0, len(payload.Events))
	for _, ev := range payload.Events {
		if mapped, ok := mapEvent(ev); ok {
			events = append(events, mapped)
		}
	}
	return events, nil
}

func (c *Client) buildRequest(ctx context.Context, route sportRoute, day time.Time) (*http.Request, error) {
	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, route.sitePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("dates", timeutil.CompactDate(day))
	q.Set("limit", strconv.Itoa(defaultLimit))
	for key, value := range route.params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func normalizeBaseURL(base string) string {
	if base == "" {
		return "https://site.api.espn.com/apis/site/v2/sports"
	}
	return strings.TrimRight(base, "/")
}

func resolveUserAgent(ua string) string {
	if ua == "" {
		return "Mozilla/5.0 (compatible; team-form-service/1.0)"
	}
	return ua
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: 10 * time.Second}
}
