package timeutil

import (
	"testing"
	"time"
)

func TestDateRoundTrip(t *testing.T) {
	day, err := ParseDate("2026-03-08")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got := FormatDate(day); got != "2026-03-08" {
		t.Errorf("expected round trip, got %s", got)
	}
	if got := CompactDate(day); got != "20260308" {
		t.Errorf("expected compact form, got %s", got)
	}
}

func TestParseDateRejectsCompact(t *testing.T) {
	if _, err := ParseDate("20260308"); err == nil {
		t.Error("expected error for compact input")
	}
}

func TestNormalizeCompact(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2026-03-08", "20260308"},
		{"20260308", "20260308"},
		{" 2026-03-08 ", "20260308"},
		{"garbage", "garbage"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := NormalizeCompact(tc.in); got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestCompactDateUsesLocation(t *testing.T) {
	utc := time.Date(2026, 3, 8, 23, 30, 0, 0, time.UTC)
	if got := CompactDate(utc); got != "20260308" {
		t.Errorf("expected 20260308, got %s", got)
	}
}
