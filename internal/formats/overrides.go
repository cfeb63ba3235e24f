package formats

import "league-postseason-service/internal/domain"

// seedingOverrides records the seasons where divisional tie-breaks put teams
// into playoff cohorts that pure record order would not. Membership was
// reconstructed from the real playoff matchups of those seasons; within each
// cohort, teams are re-seeded by regular-season record.
func seedingOverrides() map[int]domain.CohortOverride {
	return map[int]domain.CohortOverride{
		2013: {
			Championship: []string{"2", "5", "4", "1"},
			Middle:       []string{"8", "11", "6", "7"},
			Consolation:  []string{"3", "9", "10", "12"},
		},
		2014: {
			Championship: []string{"10", "5", "3", "1"},
			Middle:       []string{"6", "11", "7", "9"},
			Consolation:  []string{"2", "4", "8", "12"},
		},
		2015: {
			Championship: []string{"1", "3", "6", "5"},
			Middle:       []string{"7", "10", "2", "9"},
			Consolation:  []string{"4", "8", "11", "12"},
		},
		2017: {
			Championship: []string{"5", "6", "12", "7"},
			Middle:       []string{"1", "3"},
			Consolation:  []string{"8", "11", "9", "2"},
		},
	}
}
