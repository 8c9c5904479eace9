package form

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/logging"
	"team-form-service/internal/metrics"
	"team-form-service/internal/providers"
	"team-form-service/internal/timeutil"
)

const (
	defaultMaxLookbackDays = 90
	defaultMaxEmptyDays    = 15
)

// Scanner walks backward one calendar day at a time collecting completed
// games for a team. The walk is inherently sequential: each day's stop check
// depends on the count collected so far.
type Scanner struct {
	provider providers.ScoreboardProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder

	maxLookbackDays int
	maxEmptyDays    int
	now             func() time.Time
}

// ScannerOptions bound the scan. Non-positive values use defaults.
type ScannerOptions struct {
	MaxLookbackDays int
	MaxEmptyDays    int
}

// NewScanner constructs a Scanner with sane defaults.
func NewScanner(provider providers.ScoreboardProvider, logger *slog.Logger, recorder *metrics.Recorder, opts ScannerOptions) *Scanner {
	if opts.MaxLookbackDays <= 0 {
		opts.MaxLookbackDays = defaultMaxLookbackDays
	}
	if opts.MaxEmptyDays <= 0 {
		opts.MaxEmptyDays = defaultMaxEmptyDays
	}
	return &Scanner{
		provider:        provider,
		logger:          logger,
		metrics:         recorder,
		maxLookbackDays: opts.MaxLookbackDays,
		maxEmptyDays:    opts.MaxEmptyDays,
		now:             time.Now,
	}
}

// Scan collects up to n completed games for teamID, newest first, starting
// from yesterday. Exhausting the lookback window, hitting the consecutive
// empty-day cutoff, or running out the context deadline all end the scan with
// whatever was collected; none of them is an error. Fewer than n records,
// including zero, is a valid result.
func (s *Scanner) Scan(ctx context.Context, sport domain.Sport, teamID string, n int) ([]domain.GameRecord, error) {
	if !sport.Supported() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSport, sport)
	}
	if n <= 0 {
		return []domain.GameRecord{}, nil
	}

	start := time.Now()
	today := s.now().UTC().Truncate(24 * time.Hour)
	records := make([]domain.GameRecord, 0, n)

	emptyRun := 0
	failedDays := 0
	daysScanned := 0

	for offset := 1; offset <= s.maxLookbackDays; offset++ {
		if ctx.Err() != nil {
			// Treat a deadline like hitting the lookback bound: keep the work.
			break
		}

		day := today.AddDate(0, 0, -offset)
		daysScanned++

		events, err := s.provider.FetchDay(ctx, sport, day)
		if err != nil {
			// Soft failure: counted like an off-day but logged distinctly so a
			// run of outages is visible in diagnostics.
			failedDays++
			emptyRun++
			s.logWarn(ctx, "scoreboard day fetch failed",
				slog.String(logging.FieldSport, string(sport)),
				slog.String(logging.FieldDate, timeutil.FormatDate(day)),
				slog.Any("error", err),
			)
			if emptyRun >= s.maxEmptyDays {
				break
			}
			continue
		}

		if len(events) == 0 {
			emptyRun++
			if emptyRun >= s.maxEmptyDays {
				s.logInfo(ctx, "scan stopped on empty-day cutoff",
					slog.String(logging.FieldSport, string(sport)),
					slog.Int("empty_days", emptyRun),
				)
				break
			}
			continue
		}
		emptyRun = 0

		// Append every qualifying game from the day before checking the stop
		// condition, then clamp; a doubleheader day must not be split.
		for _, ev := range events {
			rec, ok := Normalize(ev, teamID, sport)
			if !ok || rec.State != domain.StateCompleted {
				continue
			}
			records = append(records, rec)
		}
		if len(records) >= n {
			records = records[:n]
			break
		}
	}

	s.metrics.RecordScan(string(sport), daysScanned, failedDays, time.Since(start))
	s.logInfo(ctx, "form scan complete",
		slog.String(logging.FieldSport, string(sport)),
		slog.String(logging.FieldTeamID, teamID),
		slog.Int("requested", n),
		slog.Int(logging.FieldCount, len(records)),
		slog.Int("days_scanned", daysScanned),
		slog.Int("failed_days", failedDays),
	)
	return records, nil
}

func (s *Scanner) logInfo(ctx context.Context, msg string, args ...any) {
	if logger := logging.FromContext(ctx, s.logger); logger != nil {
		logger.Info(msg, args...)
	}
}

func (s *Scanner) logWarn(ctx context.Context, msg string, args ...any) {
	if logger := logging.FromContext(ctx, s.logger); logger != nil {
		logger.Warn(msg, args...)
	}
}
