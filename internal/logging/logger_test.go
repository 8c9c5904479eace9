package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.raw); got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	logger := NewLogger(Config{Level: "warn"})
	ctx := context.Background()

	if logger.Enabled(ctx, slog.LevelInfo) {
		t.Error("info should be suppressed at warn level")
	}
	if !logger.Enabled(ctx, slog.LevelWarn) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestNewLoggerFormatSelection(t *testing.T) {
	if _, ok := NewLogger(Config{Format: "json"}).Handler().(*slog.JSONHandler); !ok {
		t.Error("expected a JSON handler for format json")
	}
	if _, ok := NewLogger(Config{}).Handler().(*slog.TextHandler); !ok {
		t.Error("expected a text handler by default")
	}
	if _, ok := NewLogger(Config{Format: "JSON"}).Handler().(*slog.JSONHandler); !ok {
		t.Error("expected format matching to be case-insensitive")
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	base := NewLogger(Config{})
	ctx := WithLogger(context.Background(), base)

	if got := FromContext(ctx, nil); got != base {
		t.Error("expected the stored logger back")
	}
}

func TestFromContextFallback(t *testing.T) {
	fallback := NewLogger(Config{})

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Error("expected fallback for a bare context")
	}
	var missing context.Context
	if got := FromContext(missing, fallback); got != fallback {
		t.Error("expected fallback for a nil context")
	}
}
