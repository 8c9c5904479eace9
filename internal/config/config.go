package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	ESPN     ESPNConfig
	Form     FormConfig
	Cache    CacheConfig
	Odds     OddsConfig
	Store    StoreConfig
	Refresh  RefreshConfig
	Metrics  MetricsConfig
}

// ESPNConfig controls the upstream scoreboard client.
type ESPNConfig struct {
	BaseURL string
	Timeout Duration
}

// FormConfig bounds the recent-form lookback scan.
type FormConfig struct {
	MaxLookbackDays int
	MaxEmptyDays    int
	FetchRetries    int
	FetchBackoff    Duration
	ScanTimeout     Duration
}

// CacheConfig controls the read-through scoreboard day cache.
type CacheConfig struct {
	TTL       Duration
	RedisAddr string // empty disables the Redis layer
	RedisTTL  Duration
}

// OddsConfig controls the betting-market client. An empty APIKey disables
// market lookups; slates then carry projections only.
type OddsConfig struct {
	APIKey     string
	BaseURL    string
	Regions    string
	Bookmakers string
}

// StoreConfig controls the relational sink. An empty DatabaseURL selects the
// nop store.
type StoreConfig struct {
	DatabaseURL string
}

// RefreshConfig controls the background slate refresher.
type RefreshConfig struct {
	Enabled  bool
	Interval Duration
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		ESPN: ESPNConfig{
			BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
			Timeout: durationEnvOrDefault(envESPNTimeout, defaultESPNTimeout),
		},
		Form: FormConfig{
			MaxLookbackDays: intEnvOrDefault(envFormLookback, defaultFormLookback),
			MaxEmptyDays:    intEnvOrDefault(envFormEmptyDays, defaultFormEmptyDays),
			FetchRetries:    intEnvOrDefault(envFormRetries, defaultFormRetries),
			FetchBackoff:    durationEnvOrDefault(envFormBackoff, defaultFormBackoff),
			ScanTimeout:     durationEnvOrDefault(envFormScanTimeout, defaultFormScanTimeout),
		},
		Cache: CacheConfig{
			TTL:       durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
			RedisAddr: envOrDefault(envRedisAddr, ""),
			RedisTTL:  durationEnvOrDefault(envRedisTTL, defaultRedisTTL),
		},
		Odds: OddsConfig{
			APIKey:     envOrDefault(envOddsAPIKey, ""),
			BaseURL:    envOrDefault(envOddsBaseURL, defaultOddsBaseURL),
			Regions:    envOrDefault(envOddsRegions, defaultOddsRegions),
			Bookmakers: envOrDefault(envOddsBookmakers, ""),
		},
		Store: StoreConfig{
			DatabaseURL: envOrDefault(envDatabaseURL, ""),
		},
		Refresh: RefreshConfig{
			Enabled:  boolEnvOrDefault(envRefreshEnabled, false),
			Interval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsOn, false),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			ServiceName:  envOrDefault(envOtelService, "team-form-service"),
			OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
		},
	}
}
