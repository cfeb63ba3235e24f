package fixture

import (
	"context"
	"testing"

	"league-postseason-service/internal/engine"
)

func TestFetchGamesIsDeterministic(t *testing.T) {
	p := New()

	first, err := p.FetchGames(context.Background(), 2019)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.FetchGames(context.Background(), 2019)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("game counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("game %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFetchGamesNeverProducesExactTies(t *testing.T) {
	p := New()

	games, err := p.FetchGames(context.Background(), 2016)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, g := range games {
		if g.IsTie() {
			t.Fatalf("fixture produced an exact tie: %+v", g)
		}
	}
}

func TestRoundRobinCoversEveryTeamEachWeek(t *testing.T) {
	p := New()

	games, err := p.FetchGames(context.Background(), 2021)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	perWeek := make(map[int]map[string]int)
	for _, g := range games {
		if g.Week > 14 { // regular season only
			continue
		}
		if perWeek[g.Week] == nil {
			perWeek[g.Week] = make(map[string]int)
		}
		perWeek[g.Week][g.HomeTeamID]++
		perWeek[g.Week][g.AwayTeamID]++
	}

	for week, teams := range perWeek {
		if len(teams) != 12 {
			t.Fatalf("week %d schedules %d teams, want 12", week, len(teams))
		}
		for id, count := range teams {
			if count != 1 {
				t.Fatalf("week %d schedules team %s %d times", week, id, count)
			}
		}
	}
}

func TestFormatsDropOverrides(t *testing.T) {
	p := New()
	src := p.Formats()

	for _, season := range []int{2013, 2014, 2015, 2017} {
		if _, ok := src.Overrides(season); ok {
			t.Fatalf("fixture format source must not carry overrides, got one for %d", season)
		}
	}
	if src.Format(2016).ChampionshipSize != 6 {
		t.Fatal("format source should delegate to the catalog")
	}
}

func TestFetchStarterScoreMatchesScheduledScores(t *testing.T) {
	p := New()

	games, err := p.FetchGames(context.Background(), 2019)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := games[0]
	got, err := p.FetchStarterScore(context.Background(), g.HomeTeamID, 2019, g.Week)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != g.HomePoints {
		t.Fatalf("starter score %v does not match scheduled score %v", got, g.HomePoints)
	}
}

// Every era must resolve end to end from fixture data alone.
func TestFixtureSeasonsResolveAcrossEras(t *testing.T) {
	p := New()
	r := engine.NewResolver(p, p, p.Formats(), nil)

	for _, season := range []int{2011, 2012, 2013, 2015, 2016, 2017, 2018, 2020, 2021, 2023} {
		result, err := r.ResolveSeason(context.Background(), season)
		if err != nil {
			t.Fatalf("season %d failed to resolve: %v", season, err)
		}
		total := len(result.Records)
		if len(result.Standings) != total {
			t.Fatalf("season %d: %d standings for %d teams", season, len(result.Standings), total)
		}
		for i, s := range result.Standings {
			if s.Place != i+1 {
				t.Fatalf("season %d: place %d at index %d", season, s.Place, i)
			}
		}
	}
}
