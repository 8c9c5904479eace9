package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envESPNBaseURL     = "ESPN_BASE_URL"
	envESPNTimeout     = "ESPN_TIMEOUT"
	envFormLookback    = "FORM_MAX_LOOKBACK_DAYS"
	envFormEmptyDays   = "FORM_MAX_EMPTY_DAYS"
	envFormRetries     = "FORM_FETCH_RETRIES"
	envFormBackoff     = "FORM_FETCH_BACKOFF"
	envFormScanTimeout = "FORM_SCAN_TIMEOUT"
	envCacheTTL        = "DAY_CACHE_TTL"
	envRedisAddr       = "REDIS_ADDR"
	envRedisTTL        = "REDIS_CACHE_TTL"
	envOddsAPIKey      = "ODDS_API_KEY"
	envOddsBaseURL     = "ODDS_API_BASE_URL"
	envOddsRegions     = "ODDS_REGIONS"
	envOddsBookmakers  = "ODDS_BOOKMAKERS"
	envDatabaseURL     = "DATABASE_URL"
	envRefreshEnabled  = "SLATE_REFRESH_ENABLED"
	envRefreshInterval = "SLATE_REFRESH_INTERVAL"
	envMetricsOn       = "METRICS_ENABLED"
	envMetricsPort     = "METRICS_PORT"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultProvider    = "espn"
	defaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	defaultESPNTimeout = 10 * Duration(time.Second)
	// Safety window so the backward day-walk never scans unbounded history.
	defaultFormLookback = 90
	// Consecutive empty days before assuming the sport is between seasons.
	defaultFormEmptyDays   = 15
	defaultFormRetries     = 2
	defaultFormBackoff     = 400 * Duration(time.Millisecond)
	defaultFormScanTimeout = 45 * Duration(time.Second)
	// Completed scoreboards are immutable; a short TTL still bounds staleness
	// for days that include in-progress games.
	defaultCacheTTL        = 5 * Duration(time.Minute)
	defaultRedisTTL        = 6 * Duration(time.Hour)
	defaultOddsBaseURL     = "https://api.the-odds-api.com/v4"
	defaultOddsRegions     = "us"
	defaultRefreshInterval = 5 * Duration(time.Minute)
	defaultMetricsPort     = "9090"
)
