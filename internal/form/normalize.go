package form

import (
	"strconv"

	"team-form-service/internal/domain"
)

// Normalize converts one canonical event into a GameRecord from teamID's
// perspective. It reports false when the team is not a participant. Malformed
// fields degrade to zero or nil; normalization never fails outright.
func Normalize(ev domain.Event, teamID string, sport domain.Sport) (domain.GameRecord, bool) {
	if len(ev.Competitors) < 2 {
		return domain.GameRecord{}, false
	}

	ourIdx := -1
	for i, c := range ev.Competitors {
		if c.TeamID == teamID {
			ourIdx = i
			break
		}
	}
	if ourIdx == -1 {
		return domain.GameRecord{}, false
	}

	ours := ev.Competitors[ourIdx]
	opp := ev.Competitors[0]
	if ourIdx == 0 {
		opp = ev.Competitors[1]
	}

	completed := ev.Completed()
	rec := domain.GameRecord{
		EventID:       ev.ID,
		Date:          ev.Date,
		Sport:         sport,
		TeamID:        ours.TeamID,
		TeamName:      ours.Name,
		OpponentID:    opp.TeamID,
		OpponentName:  opp.Name,
		IsHome:        ours.HomeAway == "home",
		State:         ev.State,
		FullTeam:      coerceScore(ours.Score, completed),
		FullOpponent:  coerceScore(opp.Score, completed),
		FirstHalfTeam: firstHalf(ours, sport.PeriodMode()),
		FirstHalfOpp:  firstHalf(opp, sport.PeriodMode()),
	}

	if rec.FullTeam != nil && rec.FullOpponent != nil {
		rec.Result = deriveResult(*rec.FullTeam, *rec.FullOpponent)
	}
	return rec, true
}

// coerceScore parses the upstream numeric-as-string score. Games that have
// not reached a final state carry no meaningful score, so they stay nil;
// completed games with an unparseable score degrade to zero.
func coerceScore(raw string, completed bool) *int {
	if !completed {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		v = 0
	}
	return &v
}

// firstHalf derives the first-half-equivalent figure from a competitor's
// period breakdown. Missing or truncated linescores yield nil; that is
// missing granularity, not an error.
func firstHalf(c domain.Competitor, mode domain.PeriodMode) *int {
	if !c.HasLinescores {
		return nil
	}
	switch mode {
	case domain.PeriodModeHalf, domain.PeriodModePeriod:
		if len(c.Linescores) < 1 {
			return nil
		}
		v := c.Linescores[0]
		return &v
	case domain.PeriodModeQuarter:
		if len(c.Linescores) < 2 {
			return nil
		}
		v := c.Linescores[0] + c.Linescores[1]
		return &v
	default:
		return nil
	}
}

func deriveResult(team, opp int) domain.Result {
	switch {
	case team > opp:
		return domain.ResultWin
	case team < opp:
		return domain.ResultLoss
	default:
		return domain.ResultTie
	}
}
