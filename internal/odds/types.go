package odds

const (
	marketSpreadsH1 = "spreads_h1"
	marketTotalsH1  = "totals_h1"
)

type eventResponse struct {
	ID       string `json:"id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
}

type eventOddsResponse struct {
	ID         string              `json:"id"`
	HomeTeam   string              `json:"home_team"`
	AwayTeam   string              `json:"away_team"`
	Bookmakers []bookmakerResponse `json:"bookmakers"`
}

type bookmakerResponse struct {
	Key     string           `json:"key"`
	Title   string           `json:"title"`
	Markets []marketResponse `json:"markets"`
}

type marketResponse struct {
	Key      string            `json:"key"`
	Outcomes []outcomeResponse `json:"outcomes"`
}

type outcomeResponse struct {
	Name  string   `json:"name"`
	Point *float64 `json:"point"`
}
