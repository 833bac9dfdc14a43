package nbastats

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"nba-scores/internal/domain"
	"nba-scores/internal/providers"
	"nba-scores/internal/timeutil"
)

// Config controls how the nbastats client reaches the stats feed.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches scoreboard data from stats.nba.com and maps it to domain
// models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an nbastats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchGames retrieves the scoreboard for the given YYYY-MM-DD date. An
// empty date means today. Days with no scheduled games yield an empty slice.
func (c *Client) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+scoreboardPath, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("gamedate", c.resolveFeedDate(date))
	q.Set("leagueid", leagueID)
	q.Set("dayoffset", "0")
	req.URL.RawQuery = q.Encode()
	applyFeedHeaders(req)

	payload, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return mapGames(payload)
}

// FetchGameDetail retrieves the box score summary for one game.
func (c *Client) FetchGameDetail(ctx context.Context, game domain.Game) (domain.GameDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+boxScorePath, nil)
	if err != nil {
		return domain.GameDetail{}, err
	}
	q := req.URL.Query()
	q.Set("gameid", game.ID)
	req.URL.RawQuery = q.Encode()
	applyFeedHeaders(req)

	payload, err := c.do(req)
	if err != nil {
		return domain.GameDetail{}, err
	}
	return mapDetail(game, payload)
}

func (c *Client) do(req *http.Request) (statsResponse, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return statsResponse{}, &providers.NetworkError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return statsResponse{}, &providers.NetworkError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload statsResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return statsResponse{}, &providers.ParseError{Provider: providerName, Err: decodeErr}
	}
	return payload, nil
}

func (c *Client) resolveFeedDate(date string) string {
	if date != "" {
		if t, err := timeutil.ParseDate(date); err == nil {
			return t.Format(feedDateLayout)
		}
	}
	return c.now().Format(feedDateLayout)
}
