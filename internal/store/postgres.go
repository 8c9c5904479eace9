package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"team-form-service/internal/domain"
)

// PostgresStore implements Store against PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a pooled connection for the given DSN.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// UpsertGames writes the day's schedule rows, replacing stale fields on
// conflict so re-running a slate refresh is safe.
func (s *PostgresStore) UpsertGames(ctx context.Context, sport domain.Sport, events []domain.Event) error {
	const query = `
		INSERT INTO games (id, sport, date_utc, status, home_team, away_team, neutral_site)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			sport = EXCLUDED.sport,
			date_utc = EXCLUDED.date_utc,
			status = EXCLUDED.status,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			neutral_site = EXCLUDED.neutral_site
	`

	for _, ev := range events {
		home, hasHome := ev.Home()
		away, hasAway := ev.Away()
		if !hasHome || !hasAway {
			continue
		}
		if _, err := s.db.ExecContext(ctx, query,
			ev.ID, string(sport), toTimestamp(ev.Date), string(ev.State), home.Name, away.Name, ev.NeutralSite,
		); err != nil {
			return fmt.Errorf("upsert game %s: %w", ev.ID, err)
		}
	}
	return nil
}

// InsertProjections appends projection rows for a slate build.
func (s *PostgresStore) InsertProjections(ctx context.Context, sport domain.Sport, scope string, rows []domain.SlateRow) error {
	const query = `
		INSERT INTO projections (game_id, sport, scope, proj_total, proj_spread_home, win_prob_home, confidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, row := range rows {
		if _, err := s.db.ExecContext(ctx, query,
			row.Event.ID, string(sport), scope,
			row.Projection.ProjTotal, row.Projection.ProjSpreadHome,
			row.Projection.WinProbHome, row.Projection.Confidence,
		); err != nil {
			return fmt.Errorf("insert projection %s: %w", row.Event.ID, err)
		}
	}
	return nil
}

// InsertMarkets appends market quotes and the projection-vs-market edges for
// rows that carried a market line.
func (s *PostgresStore) InsertMarkets(ctx context.Context, sport domain.Sport, scope string, rows []domain.SlateRow) error {
	const marketQuery = `
		INSERT INTO markets (game_id, sport, scope, book, market_total, market_spread_home)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	const edgeQuery = `
		INSERT INTO edges (game_id, sport, scope, edge_total, edge_spread_home)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, row := range rows {
		if row.Market == nil {
			continue
		}
		if _, err := s.db.ExecContext(ctx, marketQuery,
			row.Event.ID, string(sport), scope,
			row.Market.Book, row.Market.Total, row.Market.SpreadHome,
		); err != nil {
			return fmt.Errorf("insert market %s: %w", row.Event.ID, err)
		}
		if row.EdgeTotal == nil && row.EdgeSpread == nil {
			continue
		}
		if _, err := s.db.ExecContext(ctx, edgeQuery,
			row.Event.ID, string(sport), scope, row.EdgeTotal, row.EdgeSpread,
		); err != nil {
			return fmt.Errorf("insert edge %s: %w", row.Event.ID, err)
		}
	}
	return nil
}

// toTimestamp parses the upstream ISO timestamp, returning nil for anything
// unparseable so a bad date never blocks the batch.
func toTimestamp(raw string) *time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z"} {
		if t, err := time.Parse(layout, raw); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
