package domain

// CompletionState mirrors the shared contract for game lifecycle states.
type CompletionState string

const (
	StateScheduled  CompletionState = "SCHEDULED"
	StateInProgress CompletionState = "IN_PROGRESS"
	StateCompleted  CompletionState = "COMPLETED"
)

// Result is the game outcome from the perspective team's side.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultTie  Result = "T"
)

// Competitor is one side of an upstream event after the wire shape has been
// parsed once. Score stays a string here; upstream sends numerics as strings
// and coercion happens at normalization time.
type Competitor struct {
	TeamID     string `json:"teamId"`
	Name       string `json:"name"`
	HomeAway   string `json:"homeAway"`
	Score      string `json:"score"`
	Linescores []int  `json:"linescores,omitempty"`
	// HasLinescores distinguishes "no period breakdown in the payload" from
	// an empty breakdown; missing granularity is not an error.
	HasLinescores bool `json:"-"`
}

// Event is the canonical team-agnostic representation of one upstream
// scoreboard event (the RawEvent of the query pipeline).
type Event struct {
	ID          string          `json:"eventId"`
	Date        string          `json:"date"`
	ShortName   string          `json:"shortName,omitempty"`
	State       CompletionState `json:"state"`
	NeutralSite bool            `json:"neutralSite,omitempty"`
	Competitors []Competitor    `json:"competitors"`
}

// Completed reports whether the event reached a terminal final state.
func (e Event) Completed() bool {
	return e.State == StateCompleted
}

// Home returns the home-side competitor.
func (e Event) Home() (Competitor, bool) {
	return e.side("home")
}

// Away returns the away-side competitor.
func (e Event) Away() (Competitor, bool) {
	return e.side("away")
}

func (e Event) side(homeAway string) (Competitor, bool) {
	for _, c := range e.Competitors {
		if c.HomeAway == homeAway {
			return c, true
		}
	}
	return Competitor{}, false
}

// GameRecord is one normalized game from a single team's perspective.
// Pointer fields are nil when the upstream data did not carry the figure;
// nil is deliberately distinct from zero.
type GameRecord struct {
	EventID       string          `json:"eventId"`
	Date          string          `json:"date"`
	Sport         Sport           `json:"sport"`
	TeamID        string          `json:"teamId"`
	TeamName      string          `json:"teamName"`
	OpponentID    string          `json:"opponentId"`
	OpponentName  string          `json:"opponent"`
	IsHome        bool            `json:"isHome"`
	State         CompletionState `json:"state"`
	FullTeam      *int            `json:"teamScoreFull"`
	FullOpponent  *int            `json:"oppScoreFull"`
	FirstHalfTeam *int            `json:"teamScore1H"`
	FirstHalfOpp  *int            `json:"oppScore1H"`
	Result        Result          `json:"result,omitempty"`
}

// FormSummary aggregates a newest-first run of completed games for one team.
type FormSummary struct {
	Sport      Sport        `json:"sport"`
	TeamID     string       `json:"teamId"`
	TeamName   string       `json:"teamName"`
	NRequested int          `json:"nRequested"`
	NFound     int          `json:"nFound"`
	Games      []GameRecord `json:"games"`

	AvgFullScored  *float64 `json:"avgFull_scored"`
	AvgFullAllowed *float64 `json:"avgFull_allowed"`
	AvgFullTotal   *float64 `json:"avgFull_total"`
	Avg1HScored    *float64 `json:"avg1H_scored"`
	Avg1HAllowed   *float64 `json:"avg1H_allowed"`
	Avg1HTotal     *float64 `json:"avg1H_total"`
}

// MatchupForm pairs two summaries computed with the same sport and n.
type MatchupForm struct {
	Sport      Sport       `json:"sport"`
	NRequested int         `json:"nRequested"`
	TeamA      FormSummary `json:"team1"`
	TeamB      FormSummary `json:"team2"`
}

// Projection is the output of a projection model for one matchup.
type Projection struct {
	ProjTotal      float64  `json:"projTotal"`
	ProjSpreadHome float64  `json:"projSpreadHome"`
	WinProbHome    *float64 `json:"winProbHome,omitempty"`
	Confidence     float64  `json:"confidence"`
}

// MarketLine is a first-half-equivalent market quote for one matchup.
type MarketLine struct {
	SpreadHome *float64 `json:"marketSpreadHome"`
	Total      *float64 `json:"marketTotal"`
	Book       string   `json:"book,omitempty"`
}

// SlateRow joins a scheduled event with its projection and, when available,
// the market line and projection-vs-market edge.
type SlateRow struct {
	Event      Event       `json:"game"`
	Scope      string      `json:"scope"`
	Projection Projection  `json:"model"`
	Market     *MarketLine `json:"market,omitempty"`
	EdgeTotal  *float64    `json:"edgeTotal,omitempty"`
	EdgeSpread *float64    `json:"edgeSpreadHome,omitempty"`
}
