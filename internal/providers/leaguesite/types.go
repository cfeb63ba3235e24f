package leaguesite

const providerName = "leaguesite"

type scheduleResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type gameResponse struct {
	ID        int          `json:"id"`
	Week      int          `json:"week"`
	Season    int          `json:"season"`
	HomeTeam  teamResponse `json:"home_team"`
	AwayTeam  teamResponse `json:"away_team"`
	HomeScore float64      `json:"home_score"`
	AwayScore float64      `json:"away_score"`
}

type teamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type metaResponse struct {
	TotalPages int `json:"total_pages"`
}

type scoreResponse struct {
	TeamID        int     `json:"team_id"`
	Season        int     `json:"season"`
	Week          int     `json:"week"`
	StarterPoints float64 `json:"starter_points"`
	BenchPoints   float64 `json:"bench_points"`
}
