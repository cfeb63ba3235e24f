package formats

import "league-postseason-service/internal/domain"

// Catalog maps seasons to bracket formats. The league's postseason shape
// changed several times; each era is one entry here and nothing else in the
// codebase branches on season numbers.
type Catalog struct {
	overrides map[int]domain.CohortOverride
}

// NewCatalog constructs the catalog with the known divisional seeding
// overrides preloaded.
func NewCatalog() *Catalog {
	return &Catalog{overrides: seedingOverrides()}
}

// Format returns the bracket format in effect for the given season.
func (c *Catalog) Format(season int) domain.BracketFormat {
	switch {
	case season <= 2012:
		// Four-team title bracket, everyone else in a head-to-head
		// consolation split into two four-team blocks.
		return domain.BracketFormat{
			RegularSeasonWeeks: 14,
			PlayoffStartWeek:   15,
			PlayoffEndWeek:     16,
			ChampionshipSize:   4,
			ConsolationSize:    8,
			FirstRoundPairings: []domain.SeedPair{{SeedA: 1, SeedB: 4}, {SeedA: 2, SeedB: 3}},
			ConsolationPairings: []domain.SeedPair{
				{SeedA: 1, SeedB: 4}, {SeedA: 2, SeedB: 3},
				{SeedA: 5, SeedB: 8}, {SeedA: 6, SeedB: 7},
			},
		}
	case season <= 2015:
		// Middle four play real games scored cumulatively; bottom four
		// get a synthesized toilet bowl.
		return domain.BracketFormat{
			RegularSeasonWeeks:   14,
			PlayoffStartWeek:     15,
			PlayoffEndWeek:       16,
			ChampionshipSize:     4,
			MiddleSize:           4,
			ConsolationSize:      4,
			HasMiddleCohort:      true,
			ConsolationSynthetic: true,
			FirstRoundPairings:   []domain.SeedPair{{SeedA: 1, SeedB: 4}, {SeedA: 2, SeedB: 3}},
		}
	case season == 2016:
		return domain.BracketFormat{
			RegularSeasonWeeks:  13,
			PlayoffStartWeek:    14,
			PlayoffEndWeek:      16,
			ChampionshipSize:    6,
			ConsolationSize:     6,
			HasByes:             true,
			FirstRoundPairings:  []domain.SeedPair{{SeedA: 3, SeedB: 6}, {SeedA: 4, SeedB: 5}},
			ConsolationPairings: []domain.SeedPair{{SeedA: 3, SeedB: 6}, {SeedA: 4, SeedB: 5}},
		}
	case season == 2017:
		// Ten-team season: four-team title bracket, two-team mediocre
		// bowl, four-team toilet bowl.
		return domain.BracketFormat{
			RegularSeasonWeeks:   14,
			PlayoffStartWeek:     15,
			PlayoffEndWeek:       16,
			ChampionshipSize:     4,
			MiddleSize:           2,
			ConsolationSize:      4,
			HasMiddleCohort:      true,
			MiddleSynthetic:      true,
			ConsolationSynthetic: true,
			FirstRoundPairings:   []domain.SeedPair{{SeedA: 1, SeedB: 4}, {SeedA: 2, SeedB: 3}},
		}
	case season <= 2020:
		return domain.BracketFormat{
			RegularSeasonWeeks:   13,
			PlayoffStartWeek:     14,
			PlayoffEndWeek:       16,
			ChampionshipSize:     6,
			MiddleSize:           2,
			ConsolationSize:      4,
			HasByes:              true,
			HasMiddleCohort:      true,
			MiddleSynthetic:      true,
			ConsolationSynthetic: true,
			FirstRoundPairings:   []domain.SeedPair{{SeedA: 3, SeedB: 6}, {SeedA: 4, SeedB: 5}},
		}
	default:
		// 2021 onward: the schedule grew a week, pushing the postseason
		// to weeks 15-17. Cohort shapes are unchanged from 2018-2020.
		return domain.BracketFormat{
			RegularSeasonWeeks:   14,
			PlayoffStartWeek:     15,
			PlayoffEndWeek:       17,
			ChampionshipSize:     6,
			MiddleSize:           2,
			ConsolationSize:      4,
			HasByes:              true,
			HasMiddleCohort:      true,
			MiddleSynthetic:      true,
			ConsolationSynthetic: true,
			FirstRoundPairings:   []domain.SeedPair{{SeedA: 3, SeedB: 6}, {SeedA: 4, SeedB: 5}},
		}
	}
}

// Overrides returns the divisional seeding override for a season, if one is
// on record.
func (c *Catalog) Overrides(season int) (*domain.CohortOverride, bool) {
	o, ok := c.overrides[season]
	if !ok {
		return nil, false
	}
	// Copy so callers cannot mutate the catalog.
	out := domain.CohortOverride{
		Championship: append([]string(nil), o.Championship...),
		Middle:       append([]string(nil), o.Middle...),
		Consolation:  append([]string(nil), o.Consolation...),
	}
	return &out, true
}
