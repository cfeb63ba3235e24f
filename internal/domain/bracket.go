package domain

import "fmt"

// CohortKind identifies which slice of the league a team lands in after the
// regular season.
type CohortKind string

const (
	CohortChampionship CohortKind = "championship"
	CohortMiddle       CohortKind = "middle"
	CohortConsolation  CohortKind = "consolation"
)

// RoundName identifies a bracket game's position in the tournament.
type RoundName string

const (
	RoundRound1       RoundName = "round_1"
	RoundSemifinal    RoundName = "semifinal"
	RoundChampionship RoundName = "championship"
	RoundThirdPlace   RoundName = "third_place"
	RoundFifthPlace   RoundName = "fifth_place"
	RoundMediocreBowl RoundName = "mediocre_bowl"
	RoundToiletBowl   RoundName = "toilet_bowl"
)

// SeedPair is a first-round matchup expressed as cohort-local seed numbers
// (1-based within the cohort).
type SeedPair struct {
	SeedA int `json:"seedA"`
	SeedB int `json:"seedB"`
}

// Seed binds a team to its global seed number (1-based across the league).
type Seed struct {
	Number int    `json:"seed"`
	TeamID string `json:"teamId"`
}

// BracketFormat describes one era's postseason shape. Immutable per season;
// new formats are added as catalog data, not code branches.
type BracketFormat struct {
	RegularSeasonWeeks int
	PlayoffStartWeek   int
	PlayoffEndWeek     int

	ChampionshipSize int
	MiddleSize       int
	ConsolationSize  int

	HasByes         bool
	HasMiddleCohort bool

	// MiddleSynthetic marks eras where the middle cohort never plays real
	// games and its weekly matchups must be synthesized from starter scores.
	MiddleSynthetic bool
	// ConsolationSynthetic marks eras where the consolation cohort has no
	// real schedule and is resolved as a synthetic losers-advance bracket.
	ConsolationSynthetic bool

	// FirstRoundPairings are the championship cohort's opening matchups in
	// cohort-local seeds. With byes, only the non-bye seeds appear here.
	FirstRoundPairings []SeedPair
	// ConsolationPairings are the opening matchups of a head-to-head
	// consolation cohort, in cohort-local seeds. Empty when synthetic.
	ConsolationPairings []SeedPair
}

// TotalTeams is the sum of all cohort sizes.
func (f BracketFormat) TotalTeams() int {
	return f.ChampionshipSize + f.MiddleSize + f.ConsolationSize
}

// PlayoffWeeks is the number of weeks the postseason spans.
func (f BracketFormat) PlayoffWeeks() int {
	return f.PlayoffEndWeek - f.PlayoffStartWeek + 1
}

// CohortOverride pins cohort membership for seasons whose real playoff
// matchups reveal divisional seeding that diverges from pure record order.
// Each list holds team ids; counts must match the format's cohort sizes.
type CohortOverride struct {
	Championship []string
	Middle       []string
	Consolation  []string
}

// BracketNode is one resolved tournament game. Created by the bracket walk;
// read-only thereafter.
type BracketNode struct {
	Cohort   CohortKind `json:"cohort"`
	Round    RoundName  `json:"round"`
	Week     int        `json:"week"`
	WinnerID string     `json:"winnerId"`
	LoserID  string     `json:"loserId"`
	Game     Game       `json:"game"`
}

// PlaceLabel renders a 1-based place as an ordinal label, e.g. "3rd Place".
func PlaceLabel(place int) string {
	suffix := "th"
	switch {
	case place%100 >= 11 && place%100 <= 13:
	case place%10 == 1:
		suffix = "st"
	case place%10 == 2:
		suffix = "nd"
	case place%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s Place", place, suffix)
}
