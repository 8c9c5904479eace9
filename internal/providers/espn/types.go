package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	ShortName    string                `json:"shortName"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	ID          string               `json:"id"`
	Date        string               `json:"date"`
	NeutralSite bool                 `json:"neutralSite"`
	Status      statusResponse       `json:"status"`
	Competitors []competitorResponse `json:"competitors"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type competitorResponse struct {
	HomeAway   string              `json:"homeAway"`
	Score      string              `json:"score"`
	Team       teamResponse        `json:"team"`
	Linescores []linescoreResponse `json:"linescores"`
}

type teamResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type linescoreResponse struct {
	Value float64 `json:"value"`
}
