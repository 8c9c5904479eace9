package form

import (
	"context"
	"sync"
	"time"

	"team-form-service/internal/domain"
)

// Service exposes the public form queries: one team's recent form and the
// paired matchup view.
type Service struct {
	scanner     *Scanner
	scanTimeout time.Duration
}

// NewService constructs a Service. A non-positive scanTimeout disables the
// per-scan deadline and leaves bounding to the caller's context.
func NewService(scanner *Scanner, scanTimeout time.Duration) *Service {
	return &Service{scanner: scanner, scanTimeout: scanTimeout}
}

// TeamForm scans for the team's last n completed games and summarizes them.
// Partial results are valid; the only error surfaced is invalid input.
func (s *Service) TeamForm(ctx context.Context, sport domain.Sport, teamID string, n int) (domain.FormSummary, error) {
	if !sport.Supported() {
		return domain.FormSummary{}, domain.ErrUnsupportedSport
	}

	ctx, cancel := s.scanContext(ctx)
	defer cancel()

	games, err := s.scanner.Scan(ctx, sport, teamID, n)
	if err != nil {
		return domain.FormSummary{}, err
	}
	return Summarize(games, sport, teamID, n), nil
}

// MatchupForm computes both teams' form for the same sport and n. The two
// scans share no state and run concurrently.
func (s *Service) MatchupForm(ctx context.Context, sport domain.Sport, teamAID, teamBID string, n int) (domain.MatchupForm, error) {
	if !sport.Supported() {
		return domain.MatchupForm{}, domain.ErrUnsupportedSport
	}

	var (
		wg           sync.WaitGroup
		teamA, teamB domain.FormSummary
		errA, errB   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		teamA, errA = s.TeamForm(ctx, sport, teamAID, n)
	}()
	go func() {
		defer wg.Done()
		teamB, errB = s.TeamForm(ctx, sport, teamBID, n)
	}()
	wg.Wait()

	if errA != nil {
		return domain.MatchupForm{}, errA
	}
	if errB != nil {
		return domain.MatchupForm{}, errB
	}

	return domain.MatchupForm{
		Sport:      sport,
		NRequested: n,
		TeamA:      teamA,
		TeamB:      teamB,
	}, nil
}

func (s *Service) scanContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.scanTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.scanTimeout)
}
