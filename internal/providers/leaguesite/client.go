package leaguesite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"league-postseason-service/internal/domain"
)

// Config controls how the client reaches the league host's JSON API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	MaxPages   int
}

// Client fetches schedules and starter scores from the league host and maps
// them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	maxPages   int
}

// NewClient constructs a league site client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FetchGames retrieves the full schedule for a season, following pagination.
func (c *Client) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	page := 1
	allGames := make([]domain.Game, 0)

	for {
		req, err := c.buildScheduleRequest(ctx, season, page)
		if err != nil {
			return nil, err
		}

		var payload scheduleResponse
		if err := c.do(req, &payload); err != nil {
			return nil, err
		}

		for _, g := range payload.Data {
			allGames = append(allGames, mapGame(g))
		}

		totalPages := payload.Meta.TotalPages
		if totalPages > 0 {
			if page >= totalPages {
				break
			}
		} else if len(payload.Data) < defaultPerPage {
			break
		}
		if page >= c.maxPages {
			break
		}
		page++
	}

	return allGames, nil
}

// FetchStarterScore retrieves a team's starting-lineup points for one week.
// Bench points are reported separately by the API and discarded here.
func (c *Client) FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/teams/%s/scores", c.baseURL, teamID), nil)
	if err != nil {
		return 0, err
	}

	q := req.URL.Query()
	q.Set("season", strconv.Itoa(season))
	q.Set("week", strconv.Itoa(week))
	req.URL.RawQuery = q.Encode()
	c.authorize(req)

	var payload scoreResponse
	if err := c.do(req, &payload); err != nil {
		return 0, err
	}
	return payload.StarterPoints, nil
}

func (c *Client) buildScheduleRequest(ctx context.Context, season, page int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/seasons/%d/schedule", c.baseURL, season), nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("per_page", strconv.Itoa(defaultPerPage))
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()
	c.authorize(req)

	return req, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *Client) do(req *http.Request, payload any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return rateLimitError(resp)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("leaguesite: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}

// Name reports the provider name for logging and metrics.
func (c *Client) Name() string { return providerName }
