package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"league-postseason-service/internal/domain"
)

// GameSource supplies the full recorded schedule for a season.
type GameSource interface {
	FetchGames(ctx context.Context, season int) ([]domain.Game, error)
}

// FormatSource supplies per-season bracket formats and seeding overrides.
type FormatSource interface {
	Format(season int) domain.BracketFormat
	Overrides(season int) (*domain.CohortOverride, bool)
}

// Resolver turns one season's raw games into a fully resolved postseason.
// It holds no per-season state; every ResolveSeason call recomputes from
// scratch, so seasons can be resolved concurrently.
type Resolver struct {
	games   GameSource
	formats FormatSource
	synth   *Synthesizer
	logger  *slog.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(games GameSource, scores ScoreLookup, formats FormatSource, logger *slog.Logger) *Resolver {
	return &Resolver{
		games:   games,
		formats: formats,
		synth:   NewSynthesizer(scores, logger),
		logger:  logger,
	}
}

// ResolveSeason computes regular-season records, cohort membership, the
// bracket walk, any synthetic placement games, and the final standings.
// Deterministic given identical inputs. On any error no partial result is
// returned.
func (r *Resolver) ResolveSeason(ctx context.Context, season int) (*domain.SeasonResult, error) {
	start := time.Now()

	games, err := r.games.FetchGames(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("fetch games for season %d: %w", season, err)
	}

	f := r.formats.Format(season)

	records, err := CalculateStandings(season, games, f.RegularSeasonWeeks)
	if err != nil {
		return nil, err
	}

	override, _ := r.formats.Overrides(season)
	cohorts, err := ClassifyCohorts(records, f, override)
	if err != nil {
		return nil, err
	}

	champ, err := ProgressChampionship(season, games, cohorts.Championship, f)
	if err != nil {
		return nil, err
	}

	var (
		middle    CohortResult
		synthetic []domain.Game
	)
	if f.HasMiddleCohort {
		if f.MiddleSynthetic {
			var mGames []domain.Game
			middle, mGames, err = r.synth.MediocreBowl(ctx, season, cohorts.Middle, f.PlayoffStartWeek, f.PlayoffEndWeek)
			if err != nil {
				return nil, err
			}
			synthetic = append(synthetic, mGames...)
		} else {
			middle = RankCumulative(games, cohorts.Middle, f.PlayoffStartWeek, f.PlayoffEndWeek)
		}
	}

	var consolation CohortResult
	if f.ConsolationSynthetic {
		var cGames []domain.Game
		consolation, cGames, err = r.synth.LosersAdvance(ctx, season, cohorts.Consolation, f.PlayoffStartWeek, f.PlayoffEndWeek)
		if err != nil {
			return nil, err
		}
		synthetic = append(synthetic, cGames...)
	} else {
		consolation, err = ProgressConsolation(season, games, cohorts.Consolation, f)
		if err != nil {
			return nil, err
		}
	}

	allGames := make([]domain.Game, 0, len(games)+len(synthetic))
	allGames = append(allGames, games...)
	allGames = append(allGames, synthetic...)

	standings, err := AssembleStandings(records, cohorts, champ, middle, consolation, allGames, f, r.logger)
	if err != nil {
		return nil, err
	}

	nodes := make([]domain.BracketNode, 0, len(champ.Nodes)+len(middle.Nodes)+len(consolation.Nodes))
	nodes = append(nodes, champ.Nodes...)
	nodes = append(nodes, middle.Nodes...)
	nodes = append(nodes, consolation.Nodes...)

	if r.logger != nil {
		r.logger.Info("season resolved",
			slog.Int("season", season),
			slog.Int("teams", len(records)),
			slog.Int("bracket_games", len(nodes)),
			slog.Int("synthetic_games", len(synthetic)),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	}

	return &domain.SeasonResult{
		Season:         season,
		Records:        records,
		Bracket:        nodes,
		SyntheticGames: synthetic,
		Standings:      standings,
	}, nil
}
