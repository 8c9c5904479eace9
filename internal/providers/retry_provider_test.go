package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"team-form-service/internal/domain"
	"team-form-service/internal/metrics"
)

type flakeyProvider struct {
	failures int
	calls    int
	events   []domain.Event
}

func (f *flakeyProvider) FetchDay(ctx context.Context, sport domain.Sport, day time.Time) ([]domain.Event, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("upstream 503")
	}
	return f.events, nil
}

func TestRetryingProviderSucceedsFirstTry(t *testing.T) {
	inner := &flakeyProvider{events: []domain.Event{{ID: "1"}}}
	recorder := metrics.NewRecorder()
	provider := NewRetryingProvider(inner, nil, recorder, "espn", 3, time.Millisecond)

	events, err := provider.FetchDay(context.Background(), domain.SportCBB, time.Now())
	if err != nil {
		t.Fatalf("FetchDay returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 call, got %d", inner.calls)
	}
	if recorder.ProviderCalls("espn") != 1 || recorder.ProviderErrors("espn") != 0 {
		t.Errorf("unexpected metrics: calls=%d errors=%d",
			recorder.ProviderCalls("espn"), recorder.ProviderErrors("espn"))
	}
}

func TestRetryingProviderRecoversAfterFailure(t *testing.T) {
	inner := &flakeyProvider{failures: 1, events: []domain.Event{{ID: "1"}}}
	recorder := metrics.NewRecorder()
	provider := NewRetryingProvider(inner, nil, recorder, "espn", 2, time.Millisecond)

	events, err := provider.FetchDay(context.Background(), domain.SportCBB, time.Now())
	if err != nil {
		t.Fatalf("FetchDay returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if inner.calls != 2 {
		t.Errorf("expected 2 calls, got %d", inner.calls)
	}
	if recorder.ProviderErrors("espn") != 1 {
		t.Errorf("expected 1 recorded error, got %d", recorder.ProviderErrors("espn"))
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	inner := &flakeyProvider{failures: 10}
	provider := NewRetryingProvider(inner, nil, metrics.NewRecorder(), "espn", 3, time.Millisecond)

	_, err := provider.FetchDay(context.Background(), domain.SportCBB, time.Now())
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
}

func TestRetryingProviderStopsOnContextCancel(t *testing.T) {
	inner := &flakeyProvider{failures: 10}
	provider := NewRetryingProvider(inner, nil, metrics.NewRecorder(), "espn", 5, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.FetchDay(ctx, domain.SportCBB, time.Now())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected a single attempt before the backoff noticed cancellation, got %d", inner.calls)
	}
}

func TestRetryingProviderDefaults(t *testing.T) {
	inner := &flakeyProvider{failures: 10}
	provider := NewRetryingProvider(inner, nil, metrics.NewRecorder(), "espn", 0, time.Millisecond)

	_, _ = provider.FetchDay(context.Background(), domain.SportCBB, time.Now())
	if inner.calls != 2 {
		t.Errorf("expected default of 2 attempts, got %d", inner.calls)
	}
}
