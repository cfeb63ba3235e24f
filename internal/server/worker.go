package server

import (
	"context"

	"league-postseason-service/internal/worker"
)

// SeasonWorker defines the minimal worker behavior needed by the server.
type SeasonWorker interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() worker.Status
	ResolveSeason(ctx context.Context, season int) error
}
