package engine

import (
	"sort"

	"league-postseason-service/internal/domain"
)

// CalculateStandings folds regular-season games into per-team records and
// returns them in seed order: win percentage descending, points-for as the
// sole tie-break. Teams tied on both retain input order; the league rules
// define no further tie-break, so the stable sort is deliberate.
func CalculateStandings(season int, games []domain.Game, regularSeasonWeeks int) ([]domain.TeamRecord, error) {
	byTeam := make(map[string]*domain.TeamRecord)
	order := make([]string, 0)

	ensure := func(id, name string) *domain.TeamRecord {
		rec, ok := byTeam[id]
		if !ok {
			rec = &domain.TeamRecord{TeamID: id, TeamName: name}
			byTeam[id] = rec
			order = append(order, id)
		}
		if rec.TeamName == "" {
			rec.TeamName = name
		}
		return rec
	}

	counted := 0
	for _, g := range games {
		if g.Week > regularSeasonWeeks || g.Synthetic {
			continue
		}
		counted++

		home := ensure(g.HomeTeamID, g.HomeTeamName)
		away := ensure(g.AwayTeamID, g.AwayTeamName)

		home.PointsFor += g.HomePoints
		home.PointsAgainst += g.AwayPoints
		away.PointsFor += g.AwayPoints
		away.PointsAgainst += g.HomePoints

		switch {
		case g.IsTie():
			home.Ties++
			away.Ties++
		case g.HomePoints > g.AwayPoints:
			home.Wins++
			away.Losses++
		default:
			away.Wins++
			home.Losses++
		}
	}

	if counted == 0 {
		return nil, &MissingDataError{Season: season, FirstWeek: 1, LastWeek: regularSeasonWeeks}
	}

	records := make([]domain.TeamRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *byTeam[id])
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.WinPercentage() != b.WinPercentage() {
			return a.WinPercentage() > b.WinPercentage()
		}
		return a.PointsFor > b.PointsFor
	})

	return records, nil
}
