package engine

import (
	"fmt"
	"sort"

	"league-postseason-service/internal/domain"
)

// Cohorts is the league partitioned for the postseason. Seed numbers are
// global: the middle cohort starts at championship size + 1, and so on.
type Cohorts struct {
	Championship []domain.Seed
	Middle       []domain.Seed
	Consolation  []domain.Seed
}

// ClassifyCohorts partitions seed-ordered records into playoff cohorts. By
// default the split follows seed order; an override pins membership for
// seasons where divisional seeding diverged from record order. Overridden
// cohorts are re-seeded internally by record order, and their sizes must
// still match the format.
func ClassifyCohorts(records []domain.TeamRecord, f domain.BracketFormat, override *domain.CohortOverride) (Cohorts, error) {
	if override != nil {
		return classifyWithOverride(records, f, override)
	}

	if len(records) != f.TotalTeams() {
		return Cohorts{}, &CohortSizeMismatchError{Cohort: domain.CohortChampionship, Want: f.TotalTeams(), Got: len(records)}
	}

	seeds := make([]domain.Seed, len(records))
	for i, rec := range records {
		seeds[i] = domain.Seed{Number: i + 1, TeamID: rec.TeamID}
	}

	c := f.ChampionshipSize
	m := c + f.MiddleSize
	return Cohorts{
		Championship: seeds[:c],
		Middle:       seeds[c:m],
		Consolation:  seeds[m:],
	}, nil
}

func classifyWithOverride(records []domain.TeamRecord, f domain.BracketFormat, override *domain.CohortOverride) (Cohorts, error) {
	sizes := []struct {
		kind domain.CohortKind
		want int
		ids  []string
	}{
		{domain.CohortChampionship, f.ChampionshipSize, override.Championship},
		{domain.CohortMiddle, f.MiddleSize, override.Middle},
		{domain.CohortConsolation, f.ConsolationSize, override.Consolation},
	}

	rank := make(map[string]int, len(records))
	for i, rec := range records {
		rank[rec.TeamID] = i
	}

	seen := make(map[string]domain.CohortKind, len(records))
	var out Cohorts
	next := 1
	for _, cohort := range sizes {
		if len(cohort.ids) != cohort.want {
			return Cohorts{}, &CohortSizeMismatchError{Cohort: cohort.kind, Want: cohort.want, Got: len(cohort.ids)}
		}
		members := make([]string, len(cohort.ids))
		copy(members, cohort.ids)
		for _, id := range members {
			if _, ok := rank[id]; !ok {
				return Cohorts{}, fmt.Errorf("override names unknown team %s in %s cohort", id, cohort.kind)
			}
			if prev, ok := seen[id]; ok {
				return Cohorts{}, fmt.Errorf("override places team %s in both %s and %s cohorts", id, prev, cohort.kind)
			}
			seen[id] = cohort.kind
		}

		// Re-seed the cohort by regular-season record.
		sort.SliceStable(members, func(i, j int) bool { return rank[members[i]] < rank[members[j]] })

		seeds := make([]domain.Seed, len(members))
		for i, id := range members {
			seeds[i] = domain.Seed{Number: next, TeamID: id}
			next++
		}
		switch cohort.kind {
		case domain.CohortChampionship:
			out.Championship = seeds
		case domain.CohortMiddle:
			out.Middle = seeds
		case domain.CohortConsolation:
			out.Consolation = seeds
		}
	}

	if len(seen) != len(records) {
		return Cohorts{}, &CohortSizeMismatchError{Cohort: domain.CohortConsolation, Want: len(records), Got: len(seen)}
	}
	return out, nil
}
