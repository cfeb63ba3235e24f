package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"league-postseason-service/internal/domain"
)

// ScoreLookup fetches a team's real, already-recorded starter-only points for
// one week. Bench points are excluded. Implementations live in the providers
// layer and carry their own rate limiting and retries.
type ScoreLookup interface {
	FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error)
}

// Synthesizer constructs placement games for cohorts whose members never play
// each other in the recorded schedule. It only ever pairs real scores; it
// never invents one.
type Synthesizer struct {
	scores ScoreLookup
	logger *slog.Logger
}

// NewSynthesizer constructs a Synthesizer.
func NewSynthesizer(scores ScoreLookup, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{scores: scores, logger: logger}
}

// LosersAdvance builds a deterministic losers-advance mini-tournament for the
// cohort: round 1 pairs top seed against bottom seed; round-1 losers then meet
// to settle the bottom places while round-1 winners meet for the top places.
// The inversion is intentional: the cohort exists to rank a fixed low group,
// not to crown a champion. Three-week ranges insert a middle week and let the
// final-week rematch decide the order.
func (s *Synthesizer) LosersAdvance(ctx context.Context, season int, seeds []domain.Seed, startWeek, endWeek int) (CohortResult, []domain.Game, error) {
	n := len(seeds)
	if n < 2 || n%2 != 0 {
		return CohortResult{}, nil, fmt.Errorf("losers-advance cohort needs an even team count, got %d", n)
	}
	weeks := endWeek - startWeek + 1
	if weeks < 2 || weeks > 3 {
		return CohortResult{}, nil, fmt.Errorf("losers-advance cohort spans %d weeks, want 2 or 3", weeks)
	}

	var (
		result CohortResult
		games  []domain.Game
	)

	var winners, losers []string
	for i := 0; i < n/2; i++ {
		home, away := seeds[i].TeamID, seeds[n-1-i].TeamID
		g, err := s.game(ctx, season, startWeek, home, away)
		if err != nil {
			return CohortResult{}, nil, err
		}
		games = append(games, g)
		node := s.node(domain.RoundRound1, g)
		result.Nodes = append(result.Nodes, node)
		winners = append(winners, node.WinnerID)
		losers = append(losers, node.LoserID)
	}

	pairs := [][2]string{
		{winners[0], winners[1]},
		{losers[0], losers[1]},
	}

	if weeks == 3 {
		// Middle week: winners pair and losers pair play once; the
		// final-week rematch is what decides the order.
		for _, p := range pairs {
			g, err := s.game(ctx, season, startWeek+1, p[0], p[1])
			if err != nil {
				return CohortResult{}, nil, err
			}
			games = append(games, g)
			result.Nodes = append(result.Nodes, s.node(domain.RoundToiletBowl, g))
		}
	}

	for _, p := range pairs {
		home, away := p[0], p[1]
		if weeks == 3 {
			// Rematch swaps sides.
			home, away = away, home
		}
		g, err := s.game(ctx, season, endWeek, home, away)
		if err != nil {
			return CohortResult{}, nil, err
		}
		games = append(games, g)
		node := s.node(domain.RoundToiletBowl, g)
		result.Nodes = append(result.Nodes, node)
		result.Ordered = append(result.Ordered, node.WinnerID, node.LoserID)
	}

	return result, games, nil
}

// MediocreBowl builds the multi-week cumulative cohort: the same teams "play"
// every playoff week, alternating home and away, and summed real points across
// the weeks rank the cohort.
func (s *Synthesizer) MediocreBowl(ctx context.Context, season int, seeds []domain.Seed, startWeek, endWeek int) (CohortResult, []domain.Game, error) {
	if len(seeds) != 2 {
		return CohortResult{}, nil, fmt.Errorf("mediocre bowl pairs exactly 2 teams, got %d", len(seeds))
	}
	a, b := seeds[0].TeamID, seeds[1].TeamID

	var (
		result CohortResult
		games  []domain.Game
	)
	totals := map[string]float64{a: 0, b: 0}

	for week := startWeek; week <= endWeek; week++ {
		home, away := a, b
		if (week-startWeek)%2 == 1 {
			home, away = b, a
		}
		g, err := s.game(ctx, season, week, home, away)
		if err != nil {
			return CohortResult{}, nil, err
		}
		g.Kind = domain.SyntheticMediocreBowl
		games = append(games, g)
		result.Nodes = append(result.Nodes, s.node(domain.RoundMediocreBowl, g))
		totals[a] += g.PointsFor(a)
		totals[b] += g.PointsFor(b)
	}

	result.Ordered = []string{a, b}
	if totals[b] > totals[a] {
		result.Ordered = []string{b, a}
	}
	return result, games, nil
}

func (s *Synthesizer) game(ctx context.Context, season, week int, homeID, awayID string) (domain.Game, error) {
	homePoints, err := s.score(ctx, season, week, homeID)
	if err != nil {
		return domain.Game{}, err
	}
	awayPoints, err := s.score(ctx, season, week, awayID)
	if err != nil {
		return domain.Game{}, err
	}
	return domain.Game{
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomePoints: homePoints,
		AwayPoints: awayPoints,
		Week:       week,
		Synthetic:  true,
		Kind:       domain.SyntheticToiletBowl,
	}, nil
}

func (s *Synthesizer) score(ctx context.Context, season, week int, teamID string) (float64, error) {
	points, err := s.scores.FetchStarterScore(ctx, teamID, season, week)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("starter score fetch failed",
				slog.String("team", teamID),
				slog.Int("season", season),
				slog.Int("week", week),
				slog.Any("error", err),
			)
		}
		return 0, &ExternalScoreFetchError{TeamID: teamID, Season: season, Week: week, Err: err}
	}
	return points, nil
}

func (s *Synthesizer) node(round domain.RoundName, g domain.Game) domain.BracketNode {
	cohort := domain.CohortConsolation
	if round == domain.RoundMediocreBowl {
		cohort = domain.CohortMiddle
	}
	return domain.BracketNode{
		Cohort:   cohort,
		Round:    round,
		Week:     g.Week,
		WinnerID: g.WinnerID(),
		LoserID:  g.LoserID(),
		Game:     g,
	}
}

// RankCumulative orders a cohort that plays real games during the playoff
// weeks by total points scored across the range. Games between cohort members
// are recorded as mediocre-bowl bracket nodes.
func RankCumulative(games []domain.Game, seeds []domain.Seed, startWeek, endWeek int) CohortResult {
	members := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		members[s.TeamID] = true
	}

	var result CohortResult
	totals := make(map[string]float64, len(seeds))
	for _, g := range games {
		if g.Week < startWeek || g.Week > endWeek || g.Synthetic {
			continue
		}
		if members[g.HomeTeamID] {
			totals[g.HomeTeamID] += g.HomePoints
		}
		if members[g.AwayTeamID] {
			totals[g.AwayTeamID] += g.AwayPoints
		}
		if members[g.HomeTeamID] && members[g.AwayTeamID] {
			result.Nodes = append(result.Nodes, domain.BracketNode{
				Cohort:   domain.CohortMiddle,
				Round:    domain.RoundMediocreBowl,
				Week:     g.Week,
				WinnerID: g.WinnerID(),
				LoserID:  g.LoserID(),
				Game:     g,
			})
		}
	}

	ordered := make([]string, 0, len(seeds))
	for _, s := range seeds {
		ordered = append(ordered, s.TeamID)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return totals[ordered[i]] > totals[ordered[j]]
	})
	result.Ordered = ordered
	return result
}
