package domain

import "fmt"

// Sport identifies one of the supported upstream scoreboard feeds.
type Sport string

const (
	SportCBB Sport = "cbb" // men's college basketball
	SportNFL Sport = "nfl" // pro football
	SportCFB Sport = "cfb" // college football
	SportNHL Sport = "nhl" // hockey
)

// PeriodMode describes how a sport's linescore periods map onto the
// first-half-equivalent split. For hockey the "first half" figures are the
// first period's score; the label is sport-relative, not literal.
type PeriodMode string

const (
	// PeriodModeHalf means linescore entries are halves; 1H = entry 0.
	PeriodModeHalf PeriodMode = "half"
	// PeriodModeQuarter means linescore entries are quarters; 1H = entries 0+1.
	PeriodModeQuarter PeriodMode = "quarter"
	// PeriodModePeriod means 1H is redefined as the first period (entry 0).
	PeriodModePeriod PeriodMode = "period"
)

// ErrUnsupportedSport is returned when a caller passes a sport key outside
// the supported set.
var ErrUnsupportedSport = fmt.Errorf("unsupported sport")

var periodModes = map[Sport]PeriodMode{
	SportCBB: PeriodModeHalf,
	SportNFL: PeriodModeQuarter,
	SportCFB: PeriodModeQuarter,
	SportNHL: PeriodModePeriod,
}

// ParseSport validates a sport key and returns the typed value.
func ParseSport(key string) (Sport, error) {
	s := Sport(key)
	if _, ok := periodModes[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSport, key)
	}
	return s, nil
}

// Supported reports whether the sport is one of the known feeds.
func (s Sport) Supported() bool {
	_, ok := periodModes[s]
	return ok
}

// PeriodMode returns how linescore periods map to the first-half split for
// this sport. Unsupported sports report the zero value.
func (s Sport) PeriodMode() PeriodMode {
	return periodModes[s]
}

// Sports lists the supported sport keys in a stable order.
func Sports() []Sport {
	return []Sport{SportCBB, SportNFL, SportCFB, SportNHL}
}
