// Package schedule lists a day's events per sport and composes slates:
// schedule rows joined with model projections and, when the odds client is
// configured, first-half market lines and edges.
package schedule

import (
	"context"
	"log/slog"
	"math"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/logging"
	"team-form-service/internal/model"
	"team-form-service/internal/odds"
	"team-form-service/internal/providers"
	"team-form-service/internal/store"
	"team-form-service/internal/timeutil"
)

// MarketSource supplies first-half market lines keyed by odds.MatchupKey.
type MarketSource interface {
	Enabled() bool
	FirstHalfLines(ctx context.Context, sport domain.Sport) (map[string]domain.MarketLine, error)
}

// Service composes schedule, projections, markets, and the persistence sink.
type Service struct {
	provider providers.ScoreboardProvider
	model    model.ProjectionModel
	markets  MarketSource
	sink     store.Store
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires the slate composer. markets and sink may be nil; those
// concerns are then skipped.
func NewService(provider providers.ScoreboardProvider, projModel model.ProjectionModel, markets MarketSource, sink store.Store, logger *slog.Logger) *Service {
	if sink == nil {
		sink = store.NopStore{}
	}
	return &Service{
		provider: provider,
		model:    projModel,
		markets:  markets,
		sink:     sink,
		logger:   logger,
		now:      time.Now,
	}
}

// Schedule returns the day's events. date accepts "", YYYY-MM-DD, or
// YYYYMMDD; empty means today (UTC).
func (s *Service) Schedule(ctx context.Context, sport domain.Sport, date string) ([]domain.Event, error) {
	if !sport.Supported() {
		return nil, domain.ErrUnsupportedSport
	}
	day, err := s.resolveDay(date)
	if err != nil {
		return nil, err
	}
	return s.provider.FetchDay(ctx, sport, day)
}

// Projections returns slate rows carrying model output only.
func (s *Service) Projections(ctx context.Context, sport domain.Sport, date, scope string) ([]domain.SlateRow, error) {
	events, err := s.Schedule(ctx, sport, date)
	if err != nil {
		return nil, err
	}
	return s.project(events, sport, scope, nil), nil
}

// Slate returns schedule rows with projections, market lines, and edges, and
// persists the result through the sink. Market and sink failures degrade; the
// slate itself is still returned.
func (s *Service) Slate(ctx context.Context, sport domain.Sport, date, scope string) ([]domain.SlateRow, error) {
	events, err := s.Schedule(ctx, sport, date)
	if err != nil {
		return nil, err
	}

	var lines map[string]domain.MarketLine
	if s.markets != nil && s.markets.Enabled() {
		lines, err = s.markets.FirstHalfLines(ctx, sport)
		if err != nil {
			s.logWarn(ctx, "market fetch failed", sport, err)
			lines = nil
		}
	}

	rows := s.project(events, sport, scope, lines)
	s.persist(ctx, sport, scope, events, rows)
	return rows, nil
}

func (s *Service) project(events []domain.Event, sport domain.Sport, scope string, lines map[string]domain.MarketLine) []domain.SlateRow {
	if scope != model.ScopeFullGame {
		scope = model.ScopeFirstHalf
	}

	rows := make([]domain.SlateRow, 0, len(events))
	for _, ev := range events {
		home, hasHome := ev.Home()
		away, hasAway := ev.Away()
		if !hasHome || !hasAway {
			continue
		}

		row := domain.SlateRow{
			Event:      ev,
			Scope:      scope,
			Projection: s.model.Project(sport, scope, home.Name, away.Name),
		}

		if line, ok := lines[odds.MatchupKey(away.Name, home.Name)]; ok {
			market := line
			row.Market = &market
			if market.Total != nil {
				edge := round1(row.Projection.ProjTotal - *market.Total)
				row.EdgeTotal = &edge
			}
			if market.SpreadHome != nil {
				edge := round1(row.Projection.ProjSpreadHome - *market.SpreadHome)
				row.EdgeSpread = &edge
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Service) persist(ctx context.Context, sport domain.Sport, scope string, events []domain.Event, rows []domain.SlateRow) {
	if err := s.sink.UpsertGames(ctx, sport, events); err != nil {
		s.logWarn(ctx, "game upsert failed", sport, err)
		return
	}
	if err := s.sink.InsertProjections(ctx, sport, scope, rows); err != nil {
		s.logWarn(ctx, "projection insert failed", sport, err)
	}
	if err := s.sink.InsertMarkets(ctx, sport, scope, rows); err != nil {
		s.logWarn(ctx, "market insert failed", sport, err)
	}
}

func (s *Service) resolveDay(date string) (time.Time, error) {
	if date == "" {
		return s.now().UTC(), nil
	}
	compact := timeutil.NormalizeCompact(date)
	return time.Parse(timeutil.CompactDateLayout, compact)
}

func (s *Service) logWarn(ctx context.Context, msg string, sport domain.Sport, err error) {
	if logger := logging.FromContext(ctx, s.logger); logger != nil {
		logger.Warn(msg, slog.String(logging.FieldSport, string(sport)), slog.Any("error", err))
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
