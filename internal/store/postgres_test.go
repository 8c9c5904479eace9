package store

import (
	"testing"
	"time"
)

func TestToTimestamp(t *testing.T) {
	got := toTimestamp("2026-03-08T23:30:00Z")
	if got == nil {
		t.Fatal("expected RFC3339 input to parse")
	}
	want := time.Date(2026, 3, 8, 23, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// The upstream scoreboard omits seconds.
	got = toTimestamp("2026-03-08T23:30Z")
	if got == nil {
		t.Fatal("expected minute-precision input to parse")
	}

	if toTimestamp("not-a-date") != nil {
		t.Error("expected nil for unparseable input")
	}
	if toTimestamp("") != nil {
		t.Error("expected nil for empty input")
	}
}
