package engine

import "league-postseason-service/internal/domain"

// CohortResult is a cohort fully resolved: the bracket games that decided it
// and its members ordered best to worst.
type CohortResult struct {
	Nodes   []domain.BracketNode
	Ordered []string
}

// bracketWalker matches expected matchups against recorded games. Games are
// matched by team-id pair within the expected week, never by upstream game
// ids, which tolerates id and ordering inconsistencies in the source data.
type bracketWalker struct {
	season int
	games  []domain.Game
}

func newBracketWalker(season int, games []domain.Game) *bracketWalker {
	return &bracketWalker{season: season, games: games}
}

func (w *bracketWalker) find(week int, teamA, teamB string) (domain.Game, bool) {
	for _, g := range w.games {
		if g.Week == week && !g.Synthetic && g.Involves(teamA, teamB) {
			return g, true
		}
	}
	return domain.Game{}, false
}

// findOpponent locates the week's game pairing teamA with any team in the
// candidate set. Used for semifinal rounds, where the opponent depends on
// round-1 results rather than the format descriptor.
func (w *bracketWalker) findOpponent(week int, teamA string, candidates map[string]bool) (domain.Game, bool) {
	for _, g := range w.games {
		if g.Week != week || g.Synthetic || !g.Has(teamA) {
			continue
		}
		other := g.HomeTeamID
		if other == teamA {
			other = g.AwayTeamID
		}
		if candidates[other] {
			return g, true
		}
	}
	return domain.Game{}, false
}

func (w *bracketWalker) node(cohort domain.CohortKind, round domain.RoundName, g domain.Game) domain.BracketNode {
	return domain.BracketNode{
		Cohort:   cohort,
		Round:    round,
		Week:     g.Week,
		WinnerID: g.WinnerID(),
		LoserID:  g.LoserID(),
		Game:     g,
	}
}

func (w *bracketWalker) missing(week int, round domain.RoundName, teamA, teamB string) error {
	return &UnresolvedBracketGameError{Season: w.season, Week: week, Round: round, TeamA: teamA, TeamB: teamB}
}

// ProgressChampionship walks the championship cohort through the playoff
// weeks and returns its bracket plus internal placement order.
func ProgressChampionship(season int, games []domain.Game, seeds []domain.Seed, f domain.BracketFormat) (CohortResult, error) {
	w := newBracketWalker(season, games)
	if f.HasByes {
		return w.byeBracket(domain.CohortChampionship, seeds, f.FirstRoundPairings, f.PlayoffStartWeek, f.PlayoffEndWeek)
	}
	return w.blockBracket(domain.CohortChampionship, seeds, f.FirstRoundPairings, f.PlayoffStartWeek, f.PlayoffEndWeek)
}

// ProgressConsolation resolves a head-to-head consolation cohort. Synthetic
// consolation cohorts never reach here; they go through the synthesizer.
func ProgressConsolation(season int, games []domain.Game, seeds []domain.Seed, f domain.BracketFormat) (CohortResult, error) {
	w := newBracketWalker(season, games)
	if len(f.ConsolationPairings)*2 < len(seeds) {
		// Pairings cover only the non-bye seeds: mirror the bye bracket.
		return w.byeBracket(domain.CohortConsolation, seeds, f.ConsolationPairings, f.PlayoffStartWeek, f.PlayoffEndWeek)
	}
	return w.blockBracket(domain.CohortConsolation, seeds, f.ConsolationPairings, f.PlayoffStartWeek, f.PlayoffEndWeek)
}

// blockBracket resolves a bye-less cohort as consecutive four-team blocks:
// each pair of first-round matchups produces a winners game and a losers game
// in the final week. The championship cohort is a single block whose opening
// round is the semifinal.
func (w *bracketWalker) blockBracket(cohort domain.CohortKind, seeds []domain.Seed, pairings []domain.SeedPair, startWeek, endWeek int) (CohortResult, error) {
	byLocal := localSeeds(seeds)

	openRound := domain.RoundSemifinal
	winnersRound := domain.RoundChampionship
	losersRound := domain.RoundThirdPlace
	if cohort == domain.CohortConsolation {
		openRound = domain.RoundRound1
		winnersRound = domain.RoundToiletBowl
		losersRound = domain.RoundToiletBowl
	}

	var result CohortResult
	for block := 0; block < len(pairings); block += 2 {
		pairs := pairings[block:]
		if len(pairs) > 2 {
			pairs = pairs[:2]
		}

		var winners, losers []string
		for _, p := range pairs {
			a, b := byLocal[p.SeedA], byLocal[p.SeedB]
			g, ok := w.find(startWeek, a, b)
			if !ok {
				return CohortResult{}, w.missing(startWeek, openRound, a, b)
			}
			n := w.node(cohort, openRound, g)
			result.Nodes = append(result.Nodes, n)
			winners = append(winners, n.WinnerID)
			losers = append(losers, n.LoserID)
		}
		if len(pairs) < 2 {
			// A lone pairing decides two places directly.
			result.Ordered = append(result.Ordered, winners...)
			result.Ordered = append(result.Ordered, losers...)
			break
		}

		winnersGame, ok := w.find(endWeek, winners[0], winners[1])
		if !ok {
			return CohortResult{}, w.missing(endWeek, winnersRound, winners[0], winners[1])
		}
		losersGame, ok := w.find(endWeek, losers[0], losers[1])
		if !ok {
			return CohortResult{}, w.missing(endWeek, losersRound, losers[0], losers[1])
		}
		wNode := w.node(cohort, winnersRound, winnersGame)
		lNode := w.node(cohort, losersRound, losersGame)
		result.Nodes = append(result.Nodes, wNode, lNode)
		result.Ordered = append(result.Ordered,
			wNode.WinnerID, wNode.LoserID, lNode.WinnerID, lNode.LoserID)
	}
	return result, nil
}

// byeBracket resolves a six-team cohort where the top two seeds skip round 1:
// round-1 winners meet the bye seeds in the semifinals, round-1 losers meet in
// a fifth-place game, and the final week decides every place.
func (w *bracketWalker) byeBracket(cohort domain.CohortKind, seeds []domain.Seed, pairings []domain.SeedPair, startWeek, endWeek int) (CohortResult, error) {
	byLocal := localSeeds(seeds)
	semifinalWeek := startWeek + 1

	round1Round := domain.RoundRound1
	semiRound := domain.RoundSemifinal
	finalRound := domain.RoundChampionship
	thirdRound := domain.RoundThirdPlace
	fifthRound := domain.RoundFifthPlace
	if cohort == domain.CohortConsolation {
		semiRound = domain.RoundToiletBowl
		finalRound = domain.RoundToiletBowl
		thirdRound = domain.RoundToiletBowl
		fifthRound = domain.RoundToiletBowl
	}

	var result CohortResult

	round1Winners := make(map[string]bool)
	var round1Losers []string
	for _, p := range pairings {
		a, b := byLocal[p.SeedA], byLocal[p.SeedB]
		g, ok := w.find(startWeek, a, b)
		if !ok {
			return CohortResult{}, w.missing(startWeek, round1Round, a, b)
		}
		n := w.node(cohort, round1Round, g)
		result.Nodes = append(result.Nodes, n)
		round1Winners[n.WinnerID] = true
		round1Losers = append(round1Losers, n.LoserID)
	}

	var semiWinners, semiLosers []string
	for _, byeSeed := range []int{1, 2} {
		team := byLocal[byeSeed]
		g, ok := w.findOpponent(semifinalWeek, team, round1Winners)
		if !ok {
			return CohortResult{}, w.missing(semifinalWeek, semiRound, team, "")
		}
		n := w.node(cohort, semiRound, g)
		result.Nodes = append(result.Nodes, n)
		semiWinners = append(semiWinners, n.WinnerID)
		semiLosers = append(semiLosers, n.LoserID)
		// A round-1 winner can meet only one bye seed.
		opponent := g.HomeTeamID
		if opponent == team {
			opponent = g.AwayTeamID
		}
		delete(round1Winners, opponent)
	}

	finals := []struct {
		round domain.RoundName
		teams []string
	}{
		{finalRound, semiWinners},
		{thirdRound, semiLosers},
		{fifthRound, round1Losers},
	}
	for _, fg := range finals {
		g, ok := w.find(endWeek, fg.teams[0], fg.teams[1])
		if !ok {
			return CohortResult{}, w.missing(endWeek, fg.round, fg.teams[0], fg.teams[1])
		}
		n := w.node(cohort, fg.round, g)
		result.Nodes = append(result.Nodes, n)
		result.Ordered = append(result.Ordered, n.WinnerID, n.LoserID)
	}
	return result, nil
}

// localSeeds maps cohort-local seed numbers (1-based) to team ids.
func localSeeds(seeds []domain.Seed) map[int]string {
	out := make(map[int]string, len(seeds))
	for i, s := range seeds {
		out[i+1] = s.TeamID
	}
	return out
}
