package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/model"
	"team-form-service/internal/odds"
	"team-form-service/internal/providers"
	"team-form-service/internal/timeutil"
)

func scheduledEvent(id, home, away string) domain.Event {
	return domain.Event{
		ID:    id,
		Date:  "2026-03-08T23:00Z",
		State: domain.StateScheduled,
		Competitors: []domain.Competitor{
			{TeamID: "1", Name: home, HomeAway: "home"},
			{TeamID: "2", Name: away, HomeAway: "away"},
		},
	}
}

func eventsProvider(events []domain.Event, capture *time.Time) providers.ScoreboardProvider {
	return providers.FetchDayFunc(func(ctx context.Context, sport domain.Sport, day time.Time) ([]domain.Event, error) {
		if capture != nil {
			*capture = day
		}
		return events, nil
	})
}

type fakeMarkets struct {
	lines   map[string]domain.MarketLine
	err     error
	enabled bool
}

func (f *fakeMarkets) Enabled() bool { return f.enabled }

func (f *fakeMarkets) FirstHalfLines(ctx context.Context, sport domain.Sport) (map[string]domain.MarketLine, error) {
	return f.lines, f.err
}

type recordingStore struct {
	games       int
	projections int
	markets     int
	failUpsert  bool
}

func (r *recordingStore) Ping(ctx context.Context) error { return nil }

func (r *recordingStore) UpsertGames(ctx context.Context, sport domain.Sport, events []domain.Event) error {
	if r.failUpsert {
		return errors.New("db down")
	}
	r.games += len(events)
	return nil
}

func (r *recordingStore) InsertProjections(ctx context.Context, sport domain.Sport, scope string, rows []domain.SlateRow) error {
	r.projections += len(rows)
	return nil
}

func (r *recordingStore) InsertMarkets(ctx context.Context, sport domain.Sport, scope string, rows []domain.SlateRow) error {
	r.markets += len(rows)
	return nil
}

func (r *recordingStore) Close() error { return nil }

func TestScheduleResolvesDates(t *testing.T) {
	var captured time.Time
	svc := NewService(eventsProvider(nil, &captured), model.NewHashModel(), nil, nil, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 8, 15, 0, 0, 0, time.UTC) }

	for _, date := range []string{"", "2026-03-08", "20260308"} {
		if _, err := svc.Schedule(context.Background(), domain.SportCBB, date); err != nil {
			t.Fatalf("date %q: %v", date, err)
		}
		if got := timeutil.CompactDate(captured); got != "20260308" {
			t.Errorf("date %q resolved to %s", date, got)
		}
	}
}

func TestScheduleRejectsBadInput(t *testing.T) {
	svc := NewService(eventsProvider(nil, nil), model.NewHashModel(), nil, nil, nil)

	if _, err := svc.Schedule(context.Background(), domain.Sport("mlb"), ""); !errors.Is(err, domain.ErrUnsupportedSport) {
		t.Errorf("expected ErrUnsupportedSport, got %v", err)
	}
	if _, err := svc.Schedule(context.Background(), domain.SportCBB, "not-a-date"); err == nil {
		t.Error("expected parse error for malformed date")
	}
}

func TestProjectionsCarryModelOutputOnly(t *testing.T) {
	events := []domain.Event{scheduledEvent("1", "Florida Gators", "LSU Tigers")}
	svc := NewService(eventsProvider(events, nil), model.NewHashModel(), nil, nil, nil)

	rows, err := svc.Projections(context.Background(), domain.SportCBB, "20260308", "1H")
	if err != nil {
		t.Fatalf("Projections returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Scope != "1H" || row.Projection.ProjTotal == 0 {
		t.Errorf("unexpected row: %+v", row)
	}
	if row.Market != nil || row.EdgeTotal != nil {
		t.Errorf("projections must not carry market data: %+v", row)
	}
}

func TestSlateJoinsMarketsAndComputesEdges(t *testing.T) {
	events := []domain.Event{scheduledEvent("1", "Florida Gators", "LSU Tigers")}
	spread, total := -3.5, 68.5
	markets := &fakeMarkets{
		enabled: true,
		lines: map[string]domain.MarketLine{
			odds.MatchupKey("LSU Tigers", "Florida Gators"): {SpreadHome: &spread, Total: &total, Book: "draftkings"},
		},
	}
	sink := &recordingStore{}
	svc := NewService(eventsProvider(events, nil), model.NewHashModel(), markets, sink, nil)

	rows, err := svc.Slate(context.Background(), domain.SportCBB, "20260308", "1H")
	if err != nil {
		t.Fatalf("Slate returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Market == nil || row.Market.Book != "draftkings" {
		t.Fatalf("expected joined market, got %+v", row.Market)
	}
	if row.EdgeTotal == nil || row.EdgeSpread == nil {
		t.Fatalf("expected edges computed, got %+v", row)
	}
	wantEdge := round1(row.Projection.ProjTotal - total)
	if *row.EdgeTotal != wantEdge {
		t.Errorf("expected total edge %v, got %v", wantEdge, *row.EdgeTotal)
	}

	if sink.games != 1 || sink.projections != 1 || sink.markets != 1 {
		t.Errorf("expected slate persisted: %+v", sink)
	}
}

func TestSlateDegradesOnMarketFailure(t *testing.T) {
	events := []domain.Event{scheduledEvent("1", "Florida Gators", "LSU Tigers")}
	markets := &fakeMarkets{enabled: true, err: errors.New("quota exceeded")}
	svc := NewService(eventsProvider(events, nil), model.NewHashModel(), markets, nil, nil)

	rows, err := svc.Slate(context.Background(), domain.SportCBB, "20260308", "1H")
	if err != nil {
		t.Fatalf("market failure must degrade, got %v", err)
	}
	if len(rows) != 1 || rows[0].Market != nil {
		t.Fatalf("expected market-free slate, got %+v", rows)
	}
}

func TestSlateSurvivesSinkFailure(t *testing.T) {
	events := []domain.Event{scheduledEvent("1", "Florida Gators", "LSU Tigers")}
	sink := &recordingStore{failUpsert: true}
	svc := NewService(eventsProvider(events, nil), model.NewHashModel(), nil, sink, nil)

	rows, err := svc.Slate(context.Background(), domain.SportCBB, "20260308", "1H")
	if err != nil {
		t.Fatalf("sink failure must degrade, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected slate despite sink failure, got %d rows", len(rows))
	}
}

func TestSlateDefaultsScopeToFirstHalf(t *testing.T) {
	events := []domain.Event{scheduledEvent("1", "Florida Gators", "LSU Tigers")}
	svc := NewService(eventsProvider(events, nil), model.NewHashModel(), nil, nil, nil)

	rows, err := svc.Slate(context.Background(), domain.SportCBB, "20260308", "")
	if err != nil {
		t.Fatalf("Slate returned error: %v", err)
	}
	if rows[0].Scope != model.ScopeFirstHalf {
		t.Errorf("expected default scope 1H, got %s", rows[0].Scope)
	}
}
