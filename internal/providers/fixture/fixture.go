package fixture

import (
	"context"
	"fmt"
	"strconv"

	"league-postseason-service/internal/domain"
	"league-postseason-service/internal/engine"
	"league-postseason-service/internal/formats"
)

// Provider serves a deterministic synthetic league: every score is a pure
// function of (season, team, week), so any season resolves identically on
// every run. Used for development and tests; no network involved.
type Provider struct {
	catalog *formats.Catalog
}

// New constructs a fixture provider.
func New() *Provider {
	return &Provider{catalog: formats.NewCatalog()}
}

// Formats returns the format source to pair with this provider. It serves
// the regular catalog but drops the real league's seeding overrides, which
// reference historical team ids that the synthetic league does not have.
func (p *Provider) Formats() engine.FormatSource {
	return formatSource{catalog: p.catalog}
}

type formatSource struct {
	catalog *formats.Catalog
}

func (f formatSource) Format(season int) domain.BracketFormat {
	return f.catalog.Format(season)
}

func (f formatSource) Overrides(int) (*domain.CohortOverride, bool) {
	return nil, false
}

// FetchGames generates the season's schedule: a round-robin regular season
// followed by the playoff games the era's bracket shape expects.
func (p *Provider) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := p.catalog.Format(season)
	total := f.TotalTeams()

	games := p.regularSeason(season, total, f.RegularSeasonWeeks)

	records, err := engine.CalculateStandings(season, games, f.RegularSeasonWeeks)
	if err != nil {
		return nil, err
	}
	cohorts, err := engine.ClassifyCohorts(records, f, nil)
	if err != nil {
		return nil, err
	}

	games = append(games, p.playoffGames(season, cohorts.Championship, f, f.FirstRoundPairings, f.HasByes)...)
	if !f.ConsolationSynthetic && len(f.ConsolationPairings) > 0 {
		byes := len(f.ConsolationPairings)*2 < len(cohorts.Consolation)
		games = append(games, p.playoffGames(season, cohorts.Consolation, f, f.ConsolationPairings, byes)...)
	}
	if f.HasMiddleCohort && !f.MiddleSynthetic {
		games = append(games, p.middleGames(season, cohorts.Middle, f)...)
	}

	return games, nil
}

// FetchStarterScore returns the deterministic starter score for the team.
func (p *Provider) FetchStarterScore(ctx context.Context, teamID string, season, week int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	idx, err := strconv.Atoi(teamID)
	if err != nil {
		return 0, fmt.Errorf("fixture: unknown team %q", teamID)
	}
	return score(season, idx, week), nil
}

func (p *Provider) regularSeason(season, total, weeks int) []domain.Game {
	var games []domain.Game
	for week := 1; week <= weeks; week++ {
		for _, pair := range roundRobinWeek(total, week) {
			games = append(games, p.game(season, pair[0], pair[1], week))
		}
	}
	return games
}

// playoffGames fabricates the bracket games the resolver will expect, using
// the same score function that decides every other result.
func (p *Provider) playoffGames(season int, seeds []domain.Seed, f domain.BracketFormat, pairings []domain.SeedPair, hasByes bool) []domain.Game {
	id := func(local int) int {
		n, _ := strconv.Atoi(seeds[local-1].TeamID)
		return n
	}
	winner := func(a, b, week int) int {
		g := p.game(season, a, b, week)
		w, _ := strconv.Atoi(g.WinnerID())
		return w
	}
	loser := func(a, b, week int) int {
		g := p.game(season, a, b, week)
		l, _ := strconv.Atoi(g.LoserID())
		return l
	}

	start, end := f.PlayoffStartWeek, f.PlayoffEndWeek
	var games []domain.Game

	if !hasByes {
		// Blocks of two pairings; winners and losers meet in the final week.
		for block := 0; block < len(pairings); block += 2 {
			pairs := pairings[block:]
			if len(pairs) > 2 {
				pairs = pairs[:2]
			}
			var winners, losers []int
			for _, pr := range pairs {
				a, b := id(pr.SeedA), id(pr.SeedB)
				games = append(games, p.game(season, a, b, start))
				winners = append(winners, winner(a, b, start))
				losers = append(losers, loser(a, b, start))
			}
			if len(pairs) == 2 {
				games = append(games,
					p.game(season, winners[0], winners[1], end),
					p.game(season, losers[0], losers[1], end),
				)
			}
		}
		return games
	}

	// Bye bracket: round 1, semifinals against the bye seeds, then the
	// championship, third-place, and fifth-place games.
	a1, b1 := id(pairings[0].SeedA), id(pairings[0].SeedB)
	a2, b2 := id(pairings[1].SeedA), id(pairings[1].SeedB)
	games = append(games, p.game(season, a1, b1, start), p.game(season, a2, b2, start))

	semiWeek := start + 1
	s1Home, s1Away := id(1), winner(a2, b2, start)
	s2Home, s2Away := id(2), winner(a1, b1, start)
	games = append(games, p.game(season, s1Home, s1Away, semiWeek), p.game(season, s2Home, s2Away, semiWeek))

	games = append(games,
		p.game(season, winner(s1Home, s1Away, semiWeek), winner(s2Home, s2Away, semiWeek), end),
		p.game(season, loser(s1Home, s1Away, semiWeek), loser(s2Home, s2Away, semiWeek), end),
		p.game(season, loser(a1, b1, start), loser(a2, b2, start), end),
	)
	return games
}

func (p *Provider) middleGames(season int, seeds []domain.Seed, f domain.BracketFormat) []domain.Game {
	id := func(local int) int {
		n, _ := strconv.Atoi(seeds[local-1].TeamID)
		return n
	}
	return []domain.Game{
		p.game(season, id(1), id(4), f.PlayoffStartWeek),
		p.game(season, id(2), id(3), f.PlayoffStartWeek),
		p.game(season, id(1), id(3), f.PlayoffEndWeek),
		p.game(season, id(2), id(4), f.PlayoffEndWeek),
	}
}

func (p *Provider) game(season, home, away, week int) domain.Game {
	return domain.Game{
		HomeTeamID:   strconv.Itoa(home),
		AwayTeamID:   strconv.Itoa(away),
		HomeTeamName: teamName(home),
		AwayTeamName: teamName(away),
		HomePoints:   score(season, home, week),
		AwayPoints:   score(season, away, week),
		Week:         week,
	}
}

// score is the single source of truth for every fixture result. The
// per-team fractional component guarantees no two teams ever tie exactly.
func score(season, team, week int) float64 {
	base := 80 + ((team*31 + week*17 + season*7) % 60)
	return float64(base) + float64(team)/10
}

// roundRobinWeek pairs teams 1..total for the given week using the circle
// method, repeating the cycle when the season outlasts one full rotation.
func roundRobinWeek(total, week int) [][2]int {
	rounds := total - 1
	r := (week - 1) % rounds

	// Team `total` is the fixed pivot; the rest rotate around it.
	rotating := make([]int, 0, total-1)
	for i := 1; i < total; i++ {
		rotating = append(rotating, i)
	}
	rot := func(i int) int {
		return rotating[((i-r)%len(rotating)+len(rotating))%len(rotating)]
	}

	pairs := [][2]int{{rot(0), total}}
	for i := 1; i < total/2; i++ {
		pairs = append(pairs, [2]int{rot(i), rot(len(rotating) - i)})
	}
	return pairs
}

var teamNames = []string{
	"Bench Warmers", "Gridiron Gurus", "Hail Mary Heroes", "Waiver Wire Wizards",
	"End Zone Bandits", "Blitz Brigade", "Fourth Down Flyers", "Red Zone Raiders",
	"Pocket Passers", "Goal Line Giants", "Turf Titans", "Draft Day Dreamers",
}

func teamName(id int) string {
	if id >= 1 && id <= len(teamNames) {
		return teamNames[id-1]
	}
	return fmt.Sprintf("Team %d", id)
}
