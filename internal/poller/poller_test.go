package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/metrics"
)

type fakeBuilder struct {
	mu    sync.Mutex
	calls []domain.Sport
	err   error
}

func (f *fakeBuilder) Slate(ctx context.Context, sport domain.Sport, date, scope string) ([]domain.SlateRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sport)
	if f.err != nil {
		return nil, f.err
	}
	return []domain.SlateRow{{Scope: scope}}, nil
}

func (f *fakeBuilder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestRefreshOnceCoversAllSports(t *testing.T) {
	builder := &fakeBuilder{}
	r := New(builder, nil, nil, metrics.NewRecorder(), time.Minute)

	r.refreshOnce(context.Background())

	if got := builder.callCount(); got != len(domain.Sports()) {
		t.Fatalf("expected one slate per sport, got %d calls", got)
	}
	status := r.Status()
	if !status.IsReady() {
		t.Errorf("expected ready after a clean cycle: %+v", status)
	}
	if status.ConsecutiveFailures != 0 || status.LastError != "" {
		t.Errorf("unexpected failure state: %+v", status)
	}
}

func TestRefreshFailureTracksStatus(t *testing.T) {
	builder := &fakeBuilder{err: errors.New("quota exceeded")}
	r := New(builder, []domain.Sport{domain.SportCBB}, nil, metrics.NewRecorder(), time.Minute)

	for i := 0; i < 3; i++ {
		r.refreshOnce(context.Background())
	}

	status := r.Status()
	if status.IsReady() {
		t.Error("expected not ready after repeated failures")
	}
	if status.ConsecutiveFailures != 3 {
		t.Errorf("expected 3 consecutive failures, got %d", status.ConsecutiveFailures)
	}
	if status.LastError != "quota exceeded" {
		t.Errorf("unexpected last error: %q", status.LastError)
	}
}

func TestRefreshRecoveryResetsFailures(t *testing.T) {
	builder := &fakeBuilder{err: errors.New("boom")}
	r := New(builder, []domain.Sport{domain.SportCBB}, nil, metrics.NewRecorder(), time.Minute)

	r.refreshOnce(context.Background())
	builder.err = nil
	r.refreshOnce(context.Background())

	status := r.Status()
	if !status.IsReady() || status.ConsecutiveFailures != 0 {
		t.Errorf("expected recovery to clear failures: %+v", status)
	}
}

func TestStatusNotReadyBeforeFirstSuccess(t *testing.T) {
	r := New(&fakeBuilder{}, nil, nil, metrics.NewRecorder(), time.Minute)
	if r.Status().IsReady() {
		t.Error("expected not ready before any cycle")
	}
}

func TestStartAndStop(t *testing.T) {
	builder := &fakeBuilder{}
	r := New(builder, []domain.Sport{domain.SportCBB}, nil, metrics.NewRecorder(), time.Hour)

	ctx := context.Background()
	r.Start(ctx)
	// Start runs an immediate warm-up cycle.
	deadline := time.Now().Add(time.Second)
	for builder.callCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if builder.callCount() == 0 {
		t.Fatal("expected an immediate refresh cycle on start")
	}

	if err := r.Stop(ctx); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	// Stop is idempotent.
	if err := r.Stop(ctx); err != nil {
		t.Fatalf("second Stop returned error: %v", err)
	}
}
