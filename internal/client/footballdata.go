package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"football_sync/ingestion/internal/metrics"
	"football_sync/ingestion/internal/models"

	"github.com/rs/zerolog/log"
)

// DateFormat is the ISO date layout the API expects for range filters
const DateFormat = "2006-01-02"

// Client is the football-data.org v4 API client.
// The token is optional: without it the API serves unauthenticated,
// rate-limited responses. The free tier allows roughly 10 requests per
// minute; the daily sync schedule stays well below that, so no limiter
// is enforced here.
type Client struct {
	baseURL         string
	token           string
	competitionCode string
	httpClient      *http.Client
}

// NewClient creates a new football-data.org API client
func NewClient(baseURL, token, competitionCode string, timeout time.Duration) *Client {
	return &Client{
		baseURL:         baseURL,
		token:           token,
		competitionCode: competitionCode,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// get performs a single GET request to the API. There is deliberately
// no retry: a failed fetch surfaces as an error and the day's sync
// simply skips its write.
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, path)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "football-sync/1.0")
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	}

	if len(params) > 0 {
		q := req.URL.Query()
		for key, value := range params {
			q.Add(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	log.Debug().
		Str("url", url).
		Str("method", req.Method).
		Msg("Making API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPICall(path, "transport_error", time.Since(start).Seconds())
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordAPICall(path, "read_error", time.Since(start).Seconds())
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	metrics.RecordAPICall(path, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	switch resp.StatusCode {
	case http.StatusOK:
		log.Debug().
			Str("url", url).
			Int("status", resp.StatusCode).
			Int("size", len(body)).
			Msg("API request successful")
		return body, nil

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("API authentication failed (status %d): %s", resp.StatusCode, string(body))

	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("API rate limit exceeded (status %d): %s", resp.StatusCode, string(body))

	default:
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
}

// FetchStandings fetches the current standings for the configured
// competition
func (c *Client) FetchStandings(ctx context.Context) (*models.StandingsResponse, error) {
	path := fmt.Sprintf("competitions/%s/standings", c.competitionCode)
	body, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}

	var standings models.StandingsResponse
	if err := json.Unmarshal(body, &standings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal standings: %w", err)
	}

	return &standings, nil
}

// FetchMatches fetches matches for the configured competition within
// the inclusive [dateFrom, dateTo] range
func (c *Client) FetchMatches(ctx context.Context, dateFrom, dateTo time.Time) (*models.MatchesResponse, error) {
	path := fmt.Sprintf("competitions/%s/matches", c.competitionCode)
	params := map[string]string{
		"dateFrom": dateFrom.Format(DateFormat),
		"dateTo":   dateTo.Format(DateFormat),
	}

	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	var matches models.MatchesResponse
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}

	return &matches, nil
}
