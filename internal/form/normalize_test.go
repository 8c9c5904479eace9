package form

import (
	"testing"

	"team-form-service/internal/domain"
)

func basketballEvent() domain.Event {
	return domain.Event{
		ID:    "401700001",
		Date:  "2026-03-08T00:00Z",
		State: domain.StateCompleted,
		Competitors: []domain.Competitor{
			{TeamID: "52", Name: "Gators", HomeAway: "home", Score: "75",
				Linescores: []int{40, 35}, HasLinescores: true},
			{TeamID: "99", Name: "Tigers", HomeAway: "away", Score: "70",
				Linescores: []int{38, 32}, HasLinescores: true},
		},
	}
}

func TestNormalizeBasketballHalves(t *testing.T) {
	rec, ok := Normalize(basketballEvent(), "52", domain.SportCBB)
	if !ok {
		t.Fatal("expected participant match")
	}
	if rec.TeamID != "52" || rec.OpponentID != "99" {
		t.Fatalf("wrong perspective: %+v", rec)
	}
	if !rec.IsHome {
		t.Error("expected home perspective")
	}
	if rec.FullTeam == nil || *rec.FullTeam != 75 {
		t.Errorf("expected full score 75, got %v", rec.FullTeam)
	}
	if rec.FirstHalfTeam == nil || *rec.FirstHalfTeam != 40 {
		t.Errorf("expected first-half score 40, got %v", rec.FirstHalfTeam)
	}
	if rec.FirstHalfOpp == nil || *rec.FirstHalfOpp != 38 {
		t.Errorf("expected opponent first-half 38, got %v", rec.FirstHalfOpp)
	}
	if rec.Result != domain.ResultWin {
		t.Errorf("expected W, got %s", rec.Result)
	}
}

func TestNormalizeOppositePerspective(t *testing.T) {
	rec, ok := Normalize(basketballEvent(), "99", domain.SportCBB)
	if !ok {
		t.Fatal("expected participant match")
	}
	if rec.TeamID != "99" || rec.OpponentID != "52" {
		t.Fatalf("wrong perspective: %+v", rec)
	}
	if rec.IsHome {
		t.Error("expected away perspective")
	}
	if rec.Result != domain.ResultLoss {
		t.Errorf("expected L, got %s", rec.Result)
	}
}

func TestNormalizeNonParticipant(t *testing.T) {
	if _, ok := Normalize(basketballEvent(), "123", domain.SportCBB); ok {
		t.Fatal("expected non-participant to be rejected")
	}
}

func TestNormalizeFootballQuarters(t *testing.T) {
	ev := basketballEvent()
	ev.Competitors[0].Score = "28"
	ev.Competitors[0].Linescores = []int{7, 10, 7, 4}
	ev.Competitors[1].Score = "21"
	ev.Competitors[1].Linescores = []int{0, 14, 0, 7}

	rec, _ := Normalize(ev, "52", domain.SportNFL)
	if rec.FirstHalfTeam == nil || *rec.FirstHalfTeam != 17 {
		t.Errorf("expected Q1+Q2 = 17, got %v", rec.FirstHalfTeam)
	}
	if rec.FirstHalfOpp == nil || *rec.FirstHalfOpp != 14 {
		t.Errorf("expected opponent Q1+Q2 = 14, got %v", rec.FirstHalfOpp)
	}
}

func TestNormalizeHockeyFirstPeriod(t *testing.T) {
	ev := basketballEvent()
	ev.Competitors[0].Score = "4"
	ev.Competitors[0].Linescores = []int{2, 1, 1}
	ev.Competitors[1].Score = "3"
	ev.Competitors[1].Linescores = []int{0, 2, 1}

	rec, _ := Normalize(ev, "52", domain.SportNHL)
	if rec.FirstHalfTeam == nil || *rec.FirstHalfTeam != 2 {
		t.Errorf("expected first period 2, got %v", rec.FirstHalfTeam)
	}
}

func TestNormalizeTruncatedLinescores(t *testing.T) {
	ev := basketballEvent()
	// Only one quarter present; a first-half sum cannot be derived.
	ev.Competitors[0].Linescores = []int{7}

	rec, _ := Normalize(ev, "52", domain.SportNFL)
	if rec.FirstHalfTeam != nil {
		t.Errorf("expected nil first half for truncated quarters, got %v", rec.FirstHalfTeam)
	}
}

func TestNormalizeMissingLinescores(t *testing.T) {
	ev := basketballEvent()
	ev.Competitors[0].Linescores = nil
	ev.Competitors[0].HasLinescores = false

	rec, _ := Normalize(ev, "52", domain.SportCBB)
	if rec.FirstHalfTeam != nil {
		t.Errorf("expected nil first half without a breakdown, got %v", rec.FirstHalfTeam)
	}
	if rec.FullTeam == nil || *rec.FullTeam != 75 {
		t.Errorf("full score must survive a missing breakdown, got %v", rec.FullTeam)
	}
}

func TestNormalizeFirstHalfNeverExceedsFull(t *testing.T) {
	rec, _ := Normalize(basketballEvent(), "52", domain.SportCBB)
	if rec.FirstHalfTeam != nil && rec.FullTeam != nil && *rec.FirstHalfTeam > *rec.FullTeam {
		t.Errorf("first half %d exceeds full %d", *rec.FirstHalfTeam, *rec.FullTeam)
	}
}

func TestNormalizeNonFinalScoresStayNil(t *testing.T) {
	ev := basketballEvent()
	ev.State = domain.StateInProgress

	rec, _ := Normalize(ev, "52", domain.SportCBB)
	if rec.FullTeam != nil || rec.FullOpponent != nil {
		t.Errorf("expected nil scores for a live game, got %v / %v", rec.FullTeam, rec.FullOpponent)
	}
	if rec.Result != "" {
		t.Errorf("expected no result for a live game, got %s", rec.Result)
	}
}

func TestNormalizeMalformedScoreDegradesToZero(t *testing.T) {
	ev := basketballEvent()
	ev.Competitors[0].Score = "abc"

	rec, _ := Normalize(ev, "52", domain.SportCBB)
	if rec.FullTeam == nil || *rec.FullTeam != 0 {
		t.Errorf("expected malformed completed score to degrade to 0, got %v", rec.FullTeam)
	}
}

func TestNormalizeTieResult(t *testing.T) {
	ev := basketballEvent()
	ev.Competitors[0].Score = "70"

	rec, _ := Normalize(ev, "52", domain.SportCBB)
	if rec.Result != domain.ResultTie {
		t.Errorf("expected T, got %s", rec.Result)
	}
}

func TestNormalizeSingleCompetitor(t *testing.T) {
	ev := basketballEvent()
	ev.Competitors = ev.Competitors[:1]

	if _, ok := Normalize(ev, "52", domain.SportCBB); ok {
		t.Fatal("expected events missing a side to be rejected")
	}
}
