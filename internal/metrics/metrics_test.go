package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordProviderAttempt(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("espn", 120*time.Millisecond, nil)
	r.RecordProviderAttempt("espn", 80*time.Millisecond, errors.New("boom"))

	if got := r.ProviderCalls("espn"); got != 2 {
		t.Errorf("expected 2 calls, got %d", got)
	}
	if got := r.ProviderErrors("espn"); got != 1 {
		t.Errorf("expected 1 error, got %d", got)
	}
	if got := r.LastCallLatency("espn"); got != 80*time.Millisecond {
		t.Errorf("expected latest latency kept, got %v", got)
	}
	if got := r.ProviderCalls("other"); got != 0 {
		t.Errorf("expected untouched provider at zero, got %d", got)
	}
}

func TestRecordScan(t *testing.T) {
	r := NewRecorder()

	r.RecordScan("cbb", 12, 2, time.Second)
	r.RecordScan("cbb", 3, 0, time.Second)

	if got := r.Scans("cbb"); got != 2 {
		t.Errorf("expected 2 scans, got %d", got)
	}
	if got := r.ScanDays("cbb"); got != 15 {
		t.Errorf("expected 15 cumulative days, got %d", got)
	}
	if got := r.ScanFailedDays("cbb"); got != 2 {
		t.Errorf("expected 2 failed days, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder

	r.RecordProviderAttempt("espn", time.Second, nil)
	r.RecordScan("cbb", 1, 0, time.Second)
	r.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	r.RecordRefreshCycle(time.Second, nil)

	if r.ProviderCalls("espn") != 0 || r.ScanDays("cbb") != 0 {
		t.Error("nil recorder must report zeros")
	}
}
