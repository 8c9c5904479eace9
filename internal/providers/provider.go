package providers

import (
	"context"
	"time"

	"team-form-service/internal/domain"
)

// ScoreboardProvider defines how one calendar day of upstream events is
// fetched and parsed. An off-day returns an empty slice, not an error; errors
// mean the provider could not ask, which callers treat as a soft failure.
type ScoreboardProvider interface {
	FetchDay(ctx context.Context, sport domain.Sport, day time.Time) ([]domain.Event, error)
}

// FetchDayFunc adapts a function to the ScoreboardProvider interface.
type FetchDayFunc func(ctx context.Context, sport domain.Sport, day time.Time) ([]domain.Event, error)

func (f FetchDayFunc) FetchDay(ctx context.Context, sport domain.Sport, day time.Time) ([]domain.Event, error) {
	return f(ctx, sport, day)
}
