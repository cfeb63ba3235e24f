package leaguesite

import "time"

const (
	defaultBaseURL     = "https://api.leaguehost.example.com/v1"
	defaultHTTPTimeout = 15 * time.Second
	defaultMaxPages    = 5
	defaultPerPage     = 100
)
