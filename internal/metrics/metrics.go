package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type scanStats struct {
	scans       int
	daysScanned int
	failedDays  int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// form scans. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	scans map[string]*scanStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		scans: make(map[string]*scanStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the
// last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordScan tracks one completed form scan: how many days were walked and how
// many of them soft-failed.
func (r *Recorder) RecordScan(sport string, daysScanned, failedDays int, duration time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureScanStats(sport)
	r.mu.Lock()
	stats.scans++
	stats.daysScanned += daysScanned
	stats.failedDays += failedDays
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordScan(sport, daysScanned, failedDays, duration)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks slate refresher cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.providerSnapshot(provider).calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.providerSnapshot(provider).errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.providerSnapshot(provider).lastCallLatency
}

// ScanDays returns the cumulative days scanned for a sport.
func (r *Recorder) ScanDays(sport string) int {
	return r.scanSnapshot(sport).daysScanned
}

// ScanFailedDays returns the cumulative soft-failed days for a sport.
func (r *Recorder) ScanFailedDays(sport string) int {
	return r.scanSnapshot(sport).failedDays
}

// Scans returns the number of scans recorded for a sport.
func (r *Recorder) Scans(sport string) int {
	return r.scanSnapshot(sport).scans
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) ensureScanStats(sport string) *scanStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.scans[sport]
	if !ok {
		stats = &scanStats{}
		r.scans[sport] = stats
	}
	return stats
}

func (r *Recorder) providerSnapshot(provider string) providerStats {
	if r == nil {
		return providerStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}

func (r *Recorder) scanSnapshot(sport string) scanStats {
	if r == nil {
		return scanStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.scans[sport]; ok && stats != nil {
		return *stats
	}
	return scanStats{}
}
