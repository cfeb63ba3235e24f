package engine

import (
	"fmt"
	"log/slog"
	"sort"

	"league-postseason-service/internal/domain"
)

// AssembleStandings merges the per-cohort orderings into one place-ranked
// table. Championship places start at 1, middle places immediately after the
// championship cohort, consolation places after that. Any team a bracket path
// never reached is assigned the next open place in seed order; that fallback
// is a data-quality warning, never a silent success.
func AssembleStandings(records []domain.TeamRecord, cohorts Cohorts, champ, middle, consolation CohortResult, games []domain.Game, f domain.BracketFormat, logger *slog.Logger) ([]domain.Standing, error) {
	total := len(records)

	names := make(map[string]string, total)
	seedOrder := make([]string, 0, total)
	for _, rec := range records {
		names[rec.TeamID] = rec.TeamName
		seedOrder = append(seedOrder, rec.TeamID)
	}

	placeOf := make(map[string]int, total)
	usedPlaces := make(map[int]bool, total)

	assign := func(ordered []string, offset int) error {
		for i, teamID := range ordered {
			if _, ok := placeOf[teamID]; ok {
				return fmt.Errorf("team %s placed twice", teamID)
			}
			if _, known := names[teamID]; !known {
				return fmt.Errorf("bracket produced unknown team %s", teamID)
			}
			place := offset + i
			placeOf[teamID] = place
			usedPlaces[place] = true
		}
		return nil
	}

	middleOffset := f.ChampionshipSize + 1
	consolationOffset := f.ChampionshipSize + f.MiddleSize + 1
	if err := assign(champ.Ordered, 1); err != nil {
		return nil, err
	}
	if err := assign(middle.Ordered, middleOffset); err != nil {
		return nil, err
	}
	if err := assign(consolation.Ordered, consolationOffset); err != nil {
		return nil, err
	}

	// Fallback: hand unplaced teams the open places in seed order.
	nextOpen := func(from int) int {
		for p := from; ; p++ {
			if !usedPlaces[p] {
				return p
			}
		}
	}
	for _, teamID := range seedOrder {
		if _, ok := placeOf[teamID]; ok {
			continue
		}
		place := nextOpen(1)
		placeOf[teamID] = place
		usedPlaces[place] = true
		if logger != nil {
			logger.Warn("team placed by seed-order fallback",
				slog.String("team", teamID),
				slog.Int("place", place),
			)
		}
	}

	standings := make([]domain.Standing, 0, total)
	for teamID, place := range placeOf {
		if place < 1 || place > total {
			return nil, fmt.Errorf("place %d for team %s outside 1..%d", place, teamID, total)
		}
		points, breakdown := playoffPoints(games, teamID, f.PlayoffStartWeek, f.PlayoffEndWeek)
		standings = append(standings, domain.Standing{
			Place:         place,
			Label:         domain.PlaceLabel(place),
			TeamID:        teamID,
			TeamName:      names[teamID],
			Points:        points,
			WeekBreakdown: breakdown,
		})
	}

	sort.Slice(standings, func(i, j int) bool { return standings[i].Place < standings[j].Place })

	for i, s := range standings {
		if s.Place != i+1 {
			return nil, fmt.Errorf("standings places are not contiguous: want %d, got %d", i+1, s.Place)
		}
	}
	return standings, nil
}

// playoffPoints sums a team's points across the playoff weeks, real and
// synthetic games alike, keeping a per-week breakdown.
func playoffPoints(games []domain.Game, teamID string, startWeek, endWeek int) (float64, map[int]float64) {
	breakdown := make(map[int]float64)
	total := 0.0
	for _, g := range games {
		if g.Week < startWeek || g.Week > endWeek || !g.Has(teamID) {
			continue
		}
		p := g.PointsFor(teamID)
		breakdown[g.Week] += p
		total += p
	}
	if len(breakdown) == 0 {
		return 0, nil
	}
	return total, breakdown
}
