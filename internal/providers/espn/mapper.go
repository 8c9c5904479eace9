package espn

import (
	"strings"

	"team-form-service/internal/domain"
)

// mapEvent flattens one scoreboard event into the canonical team-agnostic
// shape. Events without a competition entry or with fewer than two
// competitors are dropped upstream of normalization.
func mapEvent(ev eventResponse) (domain.Event, bool) {
	if len(ev.Competitions) == 0 {
		return domain.Event{}, false
	}
	comp := ev.Competitions[0]
	if len(comp.Competitors) < 2 {
		return domain.Event{}, false
	}

	id := ev.ID
	if id == "" {
		id = comp.ID
	}
	date := ev.Date
	if date == "" {
		date = comp.Date
	}

	out := domain.Event{
		ID:          id,
		Date:        date,
		ShortName:   strings.TrimSpace(ev.ShortName),
		State:       mapState(comp.Status.Type),
		NeutralSite: comp.NeutralSite,
		Competitors: make([]domain.Competitor, 0, len(comp.Competitors)),
	}
	for _, c := range comp.Competitors {
		out.Competitors = append(out.Competitors, mapCompetitor(c))
	}
	return out, true
}

func mapCompetitor(c competitorResponse) domain.Competitor {
	name := c.Team.DisplayName
	if name == "" {
		name = c.Team.Name
	}
	comp := domain.Competitor{
		TeamID:        c.Team.ID,
		Name:          name,
		HomeAway:      strings.ToLower(c.HomeAway),
		Score:         strings.TrimSpace(c.Score),
		HasLinescores: c.Linescores != nil,
	}
	if len(c.Linescores) > 0 {
		comp.Linescores = make([]int, 0, len(c.Linescores))
		for _, ls := range c.Linescores {
			comp.Linescores = append(comp.Linescores, int(ls.Value))
		}
	}
	return comp
}

func mapState(st statusTypeResponse) domain.CompletionState {
	switch {
	case st.Completed || strings.EqualFold(st.State, "post"):
		return domain.StateCompleted
	case strings.EqualFold(st.State, "in"):
		return domain.StateInProgress
	default:
		return domain.StateScheduled
	}
}
