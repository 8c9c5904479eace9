package providers

import (
	"context"
	"log/slog"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/logging"
	"team-form-service/internal/metrics"
)

const (
	defaultRetryAttempts = 2
	defaultBackoff       = 400 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a ScoreboardProvider with retry/backoff behavior.
type retryingProvider struct {
	inner        ScoreboardProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner ScoreboardProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) ScoreboardProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return backoff
		},
	}
}

func (r *retryingProvider) FetchDay(ctx context.Context, sport domain.Sport, day time.Time) ([]domain.Event, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		events, err := r.inner.FetchDay(ctx, sport, day)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return events, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry",
			slog.String(logging.FieldSport, string(sport)),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.logWarn(ctx, "provider fetch failed",
		slog.String(logging.FieldSport, string(sport)),
		slog.Int("attempts", r.maxAttempts),
		slog.Any("error", lastErr),
	)
	return nil, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
