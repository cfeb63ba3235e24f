package leaguesite

import (
	"strconv"

	"league-postseason-service/internal/domain"
)

func mapGame(g gameResponse) domain.Game {
	return domain.Game{
		HomeTeamID:   strconv.Itoa(g.HomeTeam.ID),
		AwayTeamID:   strconv.Itoa(g.AwayTeam.ID),
		HomeTeamName: g.HomeTeam.Name,
		AwayTeamName: g.AwayTeam.Name,
		HomePoints:   g.HomeScore,
		AwayPoints:   g.AwayScore,
		Week:         g.Week,
	}
}
