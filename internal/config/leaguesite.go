package config

import "time"

const (
	envSiteBaseURL     = "LEAGUESITE_BASE_URL"
	envSiteAPIKey      = "LEAGUESITE_API_KEY"
	envSitePerMinute   = "LEAGUESITE_REQUESTS_PER_MINUTE"
	envSiteMinInterval = "LEAGUESITE_MIN_REQUEST_INTERVAL"
	envSiteRetries     = "LEAGUESITE_RETRY_ATTEMPTS"
	envSiteBackoff     = "LEAGUESITE_RETRY_BACKOFF"

	defaultSiteBaseURL = "https://api.leaguehost.example.com/v1"
	// Conservative request budget; the league site throttles hard.
	defaultSitePerMinute   = 30
	defaultSiteMinInterval = 500 * time.Millisecond
	defaultSiteRetries     = 3
	defaultSiteBackoff     = 200 * time.Millisecond
)

// LeagueSiteConfig controls how we talk to the league host's API.
type LeagueSiteConfig struct {
	BaseURL            string
	APIKey             string
	RequestsPerMinute  int
	MinRequestInterval time.Duration
	RetryAttempts      int
	RetryBackoff       time.Duration
}

func loadLeagueSite() LeagueSiteConfig {
	return LeagueSiteConfig{
		BaseURL:            envOrDefault(envSiteBaseURL, defaultSiteBaseURL),
		APIKey:             envOrDefault(envSiteAPIKey, ""),
		RequestsPerMinute:  intEnvOrDefault(envSitePerMinute, defaultSitePerMinute),
		MinRequestInterval: durationEnvOrDefault(envSiteMinInterval, defaultSiteMinInterval),
		RetryAttempts:      intEnvOrDefault(envSiteRetries, defaultSiteRetries),
		RetryBackoff:       durationEnvOrDefault(envSiteBackoff, defaultSiteBackoff),
	}
}
