package testutil

import (
	"league-postseason-service/internal/domain"
)

// GameAt builds a real game for a week with explicit scores.
func GameAt(week int, home, away string, homePts, awayPts float64) domain.Game {
	return domain.Game{
		HomeTeamID: home,
		AwayTeamID: away,
		HomePoints: homePts,
		AwayPoints: awayPts,
		Week:       week,
	}
}

// SampleResult builds a minimal resolved season for store and handler tests.
func SampleResult(season int) domain.SeasonResult {
	return domain.SeasonResult{
		Season: season,
		Records: []domain.TeamRecord{
			{TeamID: "1", TeamName: "Team One", Wins: 10, Losses: 4, PointsFor: 1500},
			{TeamID: "2", TeamName: "Team Two", Wins: 4, Losses: 10, PointsFor: 1200},
		},
		Standings: []domain.Standing{
			{Place: 1, Label: "1st Place", TeamID: "1", TeamName: "Team One"},
			{Place: 2, Label: "2nd Place", TeamID: "2", TeamName: "Team Two"},
		},
	}
}
