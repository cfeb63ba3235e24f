package leaguesite

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"league-postseason-service/internal/providers"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveMaxPages(max int) int {
	if max <= 0 {
		return defaultMaxPages
	}
	return max
}

// rateLimitError converts a 429 response into a typed error carrying the
// Retry-After hint when the server supplies one.
func rateLimitError(resp *http.Response) *providers.RateLimitError {
	retryAfter := time.Duration(0)
	if raw := resp.Header.Get("Retry-After"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			retryAfter = time.Duration(secs) * time.Second
		}
	}
	return &providers.RateLimitError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		RetryAfter: retryAfter,
		Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
	}
}
