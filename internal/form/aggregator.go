package form

import (
	"math"

	"team-form-service/internal/domain"
)

// Summarize reduces a newest-first run of games into averages. It is a pure
// function. Records missing a figure are excluded from that figure's average
// rather than counted as zero, and an average with no contributing records is
// nil; absent must stay distinguishable from zero.
func Summarize(games []domain.GameRecord, sport domain.Sport, teamID string, nRequested int) domain.FormSummary {
	summary := domain.FormSummary{
		Sport:      sport,
		TeamID:     teamID,
		TeamName:   teamID,
		NRequested: nRequested,
		NFound:     len(games),
		Games:      games,
	}
	if summary.Games == nil {
		summary.Games = []domain.GameRecord{}
	}

	var fullScored, fullAllowed, fullTotal accumulator
	var halfScored, halfAllowed, halfTotal accumulator

	for _, g := range games {
		if summary.TeamName == teamID && g.TeamName != "" {
			summary.TeamName = g.TeamName
		}
		fullScored.addInt(g.FullTeam)
		fullAllowed.addInt(g.FullOpponent)
		if g.FullTeam != nil && g.FullOpponent != nil {
			fullTotal.add(float64(*g.FullTeam + *g.FullOpponent))
		}
		halfScored.addInt(g.FirstHalfTeam)
		halfAllowed.addInt(g.FirstHalfOpp)
		if g.FirstHalfTeam != nil && g.FirstHalfOpp != nil {
			halfTotal.add(float64(*g.FirstHalfTeam + *g.FirstHalfOpp))
		}
	}

	summary.AvgFullScored = fullScored.mean()
	summary.AvgFullAllowed = fullAllowed.mean()
	summary.AvgFullTotal = fullTotal.mean()
	summary.Avg1HScored = halfScored.mean()
	summary.Avg1HAllowed = halfAllowed.mean()
	summary.Avg1HTotal = halfTotal.mean()
	return summary
}

// accumulator keeps full precision while summing; rounding happens once at
// the mean, never during accumulation.
type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a *accumulator) addInt(v *int) {
	if v == nil {
		return
	}
	a.add(float64(*v))
}

func (a *accumulator) mean() *float64 {
	if a.count == 0 {
		return nil
	}
	m := round2(a.sum / float64(a.count))
	return &m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
