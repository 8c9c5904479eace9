// Package model holds the swappable projection interface. The default
// implementation is a deterministic placeholder: it hashes the matchup into a
// pseudo-random value in a per-sport range so downstream plumbing (slates,
// edges, persistence) can be exercised until a real model is substituted.
package model

import (
	"crypto/sha256"
	"encoding/binary"
	"math"

	"team-form-service/internal/domain"
)

// Scope selects which game segment a projection covers.
const (
	ScopeFirstHalf = "1H"
	ScopeFullGame  = "FG"
)

// ProjectionModel produces a projection for one matchup. Implementations must
// be pure: same inputs, same output.
type ProjectionModel interface {
	Project(sport domain.Sport, scope, homeTeam, awayTeam string) domain.Projection
}

// sportRanges bound the placeholder's first-half output per sport; full-game
// figures scale from them.
type sportRanges struct {
	totalLo, totalHi float64
	spreadMax        float64
	confLo, confHi   float64
	fgTotalScale     float64
	fgSpreadScale    float64
}

var placeholderRanges = map[domain.Sport]sportRanges{
	domain.SportCBB: {totalLo: 64, totalHi: 72, spreadMax: 4, confLo: 0.55, confHi: 0.65, fgTotalScale: 2.02, fgSpreadScale: 2.0},
	domain.SportNFL: {totalLo: 20, totalHi: 27, spreadMax: 4.5, confLo: 0.55, confHi: 0.65, fgTotalScale: 2.05, fgSpreadScale: 2.0},
	domain.SportCFB: {totalLo: 24, totalHi: 34, spreadMax: 7, confLo: 0.55, confHi: 0.65, fgTotalScale: 2.05, fgSpreadScale: 2.0},
	// Hockey's "first half" is the first period; a regulation game is three.
	domain.SportNHL: {totalLo: 1.6, totalHi: 2.4, spreadMax: 0.8, confLo: 0.55, confHi: 0.62, fgTotalScale: 3.0, fgSpreadScale: 2.5},
}

// HashModel is the deterministic placeholder implementation.
type HashModel struct{}

// NewHashModel constructs the placeholder model.
func NewHashModel() *HashModel { return &HashModel{} }

// Project derives a stable pseudo-projection from the matchup names.
func (m *HashModel) Project(sport domain.Sport, scope, homeTeam, awayTeam string) domain.Projection {
	r, ok := placeholderRanges[sport]
	if !ok {
		r = placeholderRanges[domain.SportCBB]
	}

	key := homeTeam + "|" + awayTeam
	total := hashToRange(key, r.totalLo, r.totalHi)
	spread := hashToRange(reverse(key), -r.spreadMax, r.spreadMax)
	conf := hashToRange(key+"#conf", r.confLo, r.confHi)

	if scope == ScopeFullGame {
		total *= r.fgTotalScale
		spread *= r.fgSpreadScale
	}

	// Rough logistic conversion of the full-game spread to a win chance.
	fgSpread := spread
	if scope != ScopeFullGame {
		fgSpread = spread * r.fgSpreadScale
	}
	wp := round3(1 / (1 + math.Pow(10, -fgSpread/6.0)))

	return domain.Projection{
		ProjTotal:      round1(total),
		ProjSpreadHome: round1(spread),
		WinProbHome:    &wp,
		Confidence:     round3(conf),
	}
}

// hashToRange maps a seed string onto [lo, hi) deterministically.
func hashToRange(seed string, lo, hi float64) float64 {
	sum := sha256.Sum256([]byte(seed))
	v := binary.BigEndian.Uint64(sum[:8])
	frac := float64(v%10_000) / 10_000.0
	return lo + (hi-lo)*frac
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
