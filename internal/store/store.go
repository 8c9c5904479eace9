// Package store is the relational sink for slates: games, projections, and
// market/edge rows. The query path never reads from it; it exists so the
// surrounding system can keep history.
package store

import (
	"context"

	"team-form-service/internal/domain"
)

// Store persists slate output. Implementations must tolerate repeated
// upserts for the same game id.
type Store interface {
	Ping(ctx context.Context) error
	UpsertGames(ctx context.Context, sport domain.Sport, events []domain.Event) error
	InsertProjections(ctx context.Context, sport domain.Sport, scope string, rows []domain.SlateRow) error
	InsertMarkets(ctx context.Context, sport domain.Sport, scope string, rows []domain.SlateRow) error
	Close() error
}

// NopStore discards everything; used when no database is configured.
type NopStore struct{}

func (NopStore) Ping(context.Context) error { return nil }

func (NopStore) UpsertGames(context.Context, domain.Sport, []domain.Event) error { return nil }

func (NopStore) InsertProjections(context.Context, domain.Sport, string, []domain.SlateRow) error {
	return nil
}

func (NopStore) InsertMarkets(context.Context, domain.Sport, string, []domain.SlateRow) error {
	return nil
}

func (NopStore) Close() error { return nil }
