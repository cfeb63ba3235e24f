package engine

import (
	"errors"
	"fmt"

	"league-postseason-service/internal/domain"
)

// MissingDataError means no games exist for a required season/week range.
type MissingDataError struct {
	Season    int
	FirstWeek int
	LastWeek  int
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("no games recorded for season %d weeks %d-%d", e.Season, e.FirstWeek, e.LastWeek)
}

// UnresolvedBracketGameError means a bracket round expected a matchup that has
// no matching real game. Resolution aborts rather than emitting partial
// standings, because a missing game corrupts every placement downstream.
type UnresolvedBracketGameError struct {
	Season int
	Week   int
	Round  domain.RoundName
	TeamA  string
	TeamB  string
}

func (e *UnresolvedBracketGameError) Error() string {
	if e.TeamB == "" {
		return fmt.Sprintf("season %d week %d: no %s game found for team %s", e.Season, e.Week, e.Round, e.TeamA)
	}
	return fmt.Sprintf("season %d week %d: no %s game found between %s and %s", e.Season, e.Week, e.Round, e.TeamA, e.TeamB)
}

// CohortSizeMismatchError means a seeding override does not line up with the
// format's cohort sizes. It indicates a configuration bug and is never retried.
type CohortSizeMismatchError struct {
	Cohort domain.CohortKind
	Want   int
	Got    int
}

func (e *CohortSizeMismatchError) Error() string {
	return fmt.Sprintf("%s cohort override has %d teams, format requires %d", e.Cohort, e.Got, e.Want)
}

// ExternalScoreFetchError wraps a starter-score lookup that failed after all
// retries were exhausted. The affected cohort's placement cannot be computed.
type ExternalScoreFetchError struct {
	TeamID string
	Season int
	Week   int
	Err    error
}

func (e *ExternalScoreFetchError) Error() string {
	return fmt.Sprintf("starter score unavailable for team %s season %d week %d: %v", e.TeamID, e.Season, e.Week, e.Err)
}

func (e *ExternalScoreFetchError) Unwrap() error {
	return e.Err
}

// IsFatalConfig reports whether the error indicates a structural problem
// (format descriptor or upstream data wrong) rather than a transient one.
func IsFatalConfig(err error) bool {
	var sizeErr *CohortSizeMismatchError
	var bracketErr *UnresolvedBracketGameError
	return errors.As(err, &sizeErr) || errors.As(err, &bracketErr)
}
