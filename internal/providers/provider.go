package providers

import (
	"context"

	"league-postseason-service/internal/domain"
)

// GameProvider fetches a season's full recorded schedule, normalized to
// domain games.
type GameProvider interface {
	FetchGames(ctx context.Context, season int) ([]domain.Game, error)
}

// ScoreProvider fetches a team's starting-lineup points for one week.
// Bench points must be excluded.
type ScoreProvider interface {
	FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	ScoreProvider
}
