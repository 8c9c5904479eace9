// Package odds wraps The Odds API's per-event first-half markets. A missing
// API key disables the client; slates then carry projections only.
package odds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/logging"
)

var sportKeys = map[domain.Sport]string{
	domain.SportCBB: "basketball_ncaab",
	domain.SportNFL: "americanfootball_nfl",
	domain.SportCFB: "americanfootball_ncaaf",
	domain.SportNHL: "icehockey_nhl",
}

// Config controls how the odds client reaches the upstream API.
type Config struct {
	APIKey     string
	BaseURL    string
	Regions    string
	Bookmakers string
	HTTPClient *http.Client
}

// Client fetches first-half market lines keyed by normalized "away|home".
type Client struct {
	apiKey     string
	baseURL    string
	regions    string
	bookmakers string
	httpClient httpDoer
	logger     *slog.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs an odds client with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.the-odds-api.com/v4"
	}
	regions := cfg.Regions
	if regions == "" {
		regions = "us"
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(base, "/"),
		regions:    regions,
		bookmakers: cfg.Bookmakers,
		httpClient: doer,
		logger:     logger,
	}
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool { return c.apiKey != "" }

// FirstHalfLines lists upcoming events for the sport and collects their
// first-half spread/total quotes. Individual event failures are skipped; the
// result maps MatchupKey(away, home) to the best-effort line.
func (c *Client) FirstHalfLines(ctx context.Context, sport domain.Sport) (map[string]domain.MarketLine, error) {
	lines := make(map[string]domain.MarketLine)
	if !c.Enabled() {
		return lines, nil
	}
	key, ok := sportKeys[sport]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSport, sport)
	}

	events, err := c.listEvents(ctx, key)
	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		if ev.ID == "" || ev.HomeTeam == "" || ev.AwayTeam == "" {
			continue
		}
		line, err := c.eventLine(ctx, key, ev)
		if err != nil {
			c.logWarn(ctx, "event odds fetch failed", ev.ID, err)
			continue
		}
		if line.SpreadHome == nil && line.Total == nil {
			continue
		}
		lines[MatchupKey(ev.AwayTeam, ev.HomeTeam)] = line
	}
	return lines, nil
}

func (c *Client) listEvents(ctx context.Context, sportKey string) ([]eventResponse, error) {
	url := fmt.Sprintf("%s/sports/%s/events", c.baseURL, sportKey)
	req, err := c.buildRequest(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	var events []eventResponse
	if err := c.getJSON(req, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) eventLine(ctx context.Context, sportKey string, ev eventResponse) (domain.MarketLine, error) {
	url := fmt.Sprintf("%s/sports/%s/events/%s/odds", c.baseURL, sportKey, ev.ID)
	params := map[string]string{
		"regions":    c.regions,
		"markets":    marketSpreadsH1 + "," + marketTotalsH1,
		"oddsFormat": "american",
		"dateFormat": "iso",
	}
	if c.bookmakers != "" {
		params["bookmakers"] = c.bookmakers
	}
	req, err := c.buildRequest(ctx, url, params)
	if err != nil {
		return domain.MarketLine{}, err
	}

	var payload eventOddsResponse
	if err := c.getJSON(req, &payload); err != nil {
		return domain.MarketLine{}, err
	}

	line := domain.MarketLine{}
	homeNorm := normalizeName(ev.HomeTeam)
	for _, book := range payload.Bookmakers {
		for _, market := range book.Markets {
			switch market.Key {
			case marketSpreadsH1:
				if line.SpreadHome == nil {
					line.SpreadHome = pickSpreadPoint(market, homeNorm)
					if line.SpreadHome != nil && line.Book == "" {
						line.Book = book.Key
					}
				}
			case marketTotalsH1:
				if line.Total == nil {
					line.Total = pickTotalPoint(market)
					if line.Total != nil && line.Book == "" {
						line.Book = book.Key
					}
				}
			}
		}
		if line.SpreadHome != nil && line.Total != nil {
			break
		}
	}
	return line, nil
}

func (c *Client) buildRequest(ctx context.Context, url string, params map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("apiKey", c.apiKey)
	for key, value := range params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) getJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("odds: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) logWarn(ctx context.Context, msg, eventID string, err error) {
	if logger := logging.FromContext(ctx, c.logger); logger != nil {
		logger.Warn(msg, slog.String("event_id", eventID), slog.Any("error", err))
	}
}

// pickSpreadPoint prefers the outcome matching the home team, falling back to
// the first outcome carrying a point.
func pickSpreadPoint(market marketResponse, homeNorm string) *float64 {
	for _, o := range market.Outcomes {
		nm := normalizeName(o.Name)
		if (nm == homeNorm || nm == "home") && o.Point != nil {
			return o.Point
		}
	}
	for _, o := range market.Outcomes {
		if o.Point != nil {
			return o.Point
		}
	}
	return nil
}

func pickTotalPoint(market marketResponse) *float64 {
	for _, o := range market.Outcomes {
		if o.Point != nil {
			return o.Point
		}
	}
	return nil
}

// MatchupKey builds the normalized "away|home" lookup key shared with the
// slate composer.
func MatchupKey(away, home string) string {
	return normalizeName(away) + "|" + normalizeName(home)
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
