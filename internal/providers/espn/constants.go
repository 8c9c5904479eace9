package espn

import "team-form-service/internal/domain"

const providerName = "espn"

// defaultLimit keeps a full slate (college basketball can exceed 100 games a
// day) inside a single response page.
const defaultLimit = 500

// sportRoute maps a sport onto its scoreboard path and any default filter
// params the feed needs.
type sportRoute struct {
	sitePath string
	params   map[string]string
}

var sportRoutes = map[domain.Sport]sportRoute{
	domain.SportCBB: {
		sitePath: "basketball/mens-college-basketball",
		// groups=50 restricts the feed to NCAA Division I.
		params: map[string]string{"groups": "50"},
	},
	domain.SportNFL: {
		sitePath: "football/nfl",
	},
	domain.SportCFB: {
		sitePath: "football/college-football",
	},
	domain.SportNHL: {
		sitePath: "hockey/nhl",
	},
}
