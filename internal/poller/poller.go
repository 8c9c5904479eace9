package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/logging"
	"team-form-service/internal/metrics"
	"team-form-service/internal/model"
)

const defaultInterval = 5 * time.Minute

// SlateBuilder builds (and persists, via its sink) today's slate for a sport.
type SlateBuilder interface {
	Slate(ctx context.Context, sport domain.Sport, date, scope string) ([]domain.SlateRow, error)
}

// Refresher rebuilds today's slates on an interval so the relational sink
// keeps a trail of games, projections, and markets without any HTTP traffic.
type Refresher struct {
	builder  SlateBuilder
	sports   []domain.Sport
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the refresher has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher covering the given sports.
func New(builder SlateBuilder, sports []domain.Sport, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	if len(sports) == 0 {
		sports = domain.Sports()
	}
	return &Refresher{
		builder:  builder,
		sports:   sports,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		r.logInfo("slate refresher started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial cycle to warm the sink on boot.
		r.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				r.logInfo("slate refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				r.logInfo("slate refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	start := time.Now()
	r.recordAttempt(start)

	var firstErr error
	for _, sport := range r.sports {
		if ctx.Err() != nil {
			return
		}
		rows, err := r.builder.Slate(ctx, sport, "", model.ScopeFirstHalf)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			r.logError("slate refresh failed", err, slog.String(logging.FieldSport, string(sport)))
			continue
		}
		r.logInfo("slate refreshed",
			slog.String(logging.FieldSport, string(sport)),
			slog.Int(logging.FieldCount, len(rows)),
		)
	}

	r.metrics.RecordRefreshCycle(time.Since(start), firstErr)
	if firstErr != nil {
		r.recordFailure(firstErr, start)
		return
	}
	r.recordSuccess(start)
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Refresher) logError(msg string, err error, attrs ...any) {
	if r.logger != nil {
		r.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
