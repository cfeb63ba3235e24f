package domain

// SyntheticKind labels why a synthetic game exists.
type SyntheticKind string

const (
	SyntheticNone         SyntheticKind = ""
	SyntheticToiletBowl   SyntheticKind = "toilet_bowl"
	SyntheticMediocreBowl SyntheticKind = "mediocre_bowl"
)

// Game is a single head-to-head result for one week. Real games come from the
// schedule provider; synthetic games are constructed from already-recorded
// per-team scores and flagged so consumers can tell them apart.
type Game struct {
	HomeTeamID   string        `json:"homeTeamId"`
	AwayTeamID   string        `json:"awayTeamId"`
	HomeTeamName string        `json:"homeTeamName,omitempty"`
	AwayTeamName string        `json:"awayTeamName,omitempty"`
	HomePoints   float64       `json:"homePoints"`
	AwayPoints   float64       `json:"awayPoints"`
	Week         int           `json:"week"`
	Synthetic    bool          `json:"synthetic,omitempty"`
	Kind         SyntheticKind `json:"syntheticKind,omitempty"`
}

// IsTie reports whether both sides scored exactly the same.
func (g Game) IsTie() bool {
	return g.HomePoints == g.AwayPoints
}

// WinnerID returns the winning team id. On an exact points tie the away side
// wins; regular-season record keeping treats ties separately via IsTie.
func (g Game) WinnerID() string {
	if g.HomePoints > g.AwayPoints {
		return g.HomeTeamID
	}
	return g.AwayTeamID
}

// LoserID returns the losing team id, the counterpart of WinnerID.
func (g Game) LoserID() string {
	if g.HomePoints > g.AwayPoints {
		return g.AwayTeamID
	}
	return g.HomeTeamID
}

// Involves reports whether the game is between the two given teams, in either
// home/away order.
func (g Game) Involves(teamA, teamB string) bool {
	return (g.HomeTeamID == teamA && g.AwayTeamID == teamB) ||
		(g.HomeTeamID == teamB && g.AwayTeamID == teamA)
}

// Has reports whether the team appears on either side of the game.
func (g Game) Has(teamID string) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// PointsFor returns the points the given team scored in this game, or 0 if
// the team did not play in it.
func (g Game) PointsFor(teamID string) float64 {
	switch teamID {
	case g.HomeTeamID:
		return g.HomePoints
	case g.AwayTeamID:
		return g.AwayPoints
	}
	return 0
}

// TeamRecord accumulates a team's regular-season results.
type TeamRecord struct {
	TeamID        string  `json:"teamId"`
	TeamName      string  `json:"teamName"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

// GamesPlayed is wins+losses+ties.
func (r TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}

// WinPercentage counts a tie as half a win. Returns 0 for an empty record.
func (r TeamRecord) WinPercentage() float64 {
	played := r.GamesPlayed()
	if played == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(played)
}

// Standing is one line of the final season table.
type Standing struct {
	Place         int             `json:"place"`
	Label         string          `json:"label"`
	TeamID        string          `json:"teamId"`
	TeamName      string          `json:"teamName"`
	Points        float64         `json:"points"`
	WeekBreakdown map[int]float64 `json:"weekBreakdown,omitempty"`
}

// SeasonResult is the full output of resolving one season.
type SeasonResult struct {
	Season         int           `json:"season"`
	Records        []TeamRecord  `json:"records"`
	Bracket        []BracketNode `json:"bracket"`
	SyntheticGames []Game        `json:"syntheticGames,omitempty"`
	Standings      []Standing    `json:"standings"`
}
