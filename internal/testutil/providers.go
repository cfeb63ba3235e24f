package testutil

import (
	"context"
	"fmt"

	"league-postseason-service/internal/domain"
	"league-postseason-service/internal/providers"
)

// StubProvider returns canned games and per-team scores with no error.
type StubProvider struct {
	Games  []domain.Game
	Scores map[string]float64 // keyed by ScoreKey(teamID, week)
}

// ScoreKey builds the lookup key used by StubProvider.Scores.
func ScoreKey(teamID string, week int) string {
	return fmt.Sprintf("%s/%d", teamID, week)
}

func (p StubProvider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	_ = ctx
	_ = season
	return p.Games, nil
}

func (p StubProvider) FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error) {
	_ = ctx
	_ = season
	if score, ok := p.Scores[ScoreKey(teamID, week)]; ok {
		return score, nil
	}
	return 0, fmt.Errorf("no score for team %s week %d", teamID, week)
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error) {
	return 0, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable on every call.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error) {
	return 0, providers.ErrProviderUnavailable
}

// FlakyProvider fails the first FailCount calls, then delegates to Inner.
type FlakyProvider struct {
	Inner     providers.DataProvider
	FailCount int
	Err       error

	calls int
}

func (p *FlakyProvider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	if err := p.maybeFail(); err != nil {
		return nil, err
	}
	return p.Inner.FetchGames(ctx, season)
}

func (p *FlakyProvider) FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error) {
	if err := p.maybeFail(); err != nil {
		return 0, err
	}
	return p.Inner.FetchStarterScore(ctx, teamID, season, week)
}

// Calls reports how many calls the provider has seen, failures included.
func (p *FlakyProvider) Calls() int {
	return p.calls
}

func (p *FlakyProvider) maybeFail() error {
	p.calls++
	if p.calls <= p.FailCount {
		if p.Err != nil {
			return p.Err
		}
		return providers.ErrProviderUnavailable
	}
	return nil
}
