package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"team-form-service/internal/cache"
	"team-form-service/internal/config"
	"team-form-service/internal/form"
	httpserver "team-form-service/internal/http"
	"team-form-service/internal/metrics"
	"team-form-service/internal/model"
	"team-form-service/internal/odds"
	"team-form-service/internal/poller"
	"team-form-service/internal/providers"
	"team-form-service/internal/providers/espn"
	"team-form-service/internal/providers/fixture"
	"team-form-service/internal/schedule"
	"team-form-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the wired components and their lifecycle.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	httpServer    httpServer
	metricsServer httpServer
	refresher     *poller.Refresher
	sink          store.Store
	redisClient   *redis.Client
	metricsStop   func(context.Context) error
}

type httpServer interface {
	Addr() string
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	provider, providerName := buildBaseProvider(cfg)
	provider = providers.NewRetryingProvider(provider, logger, recorder, providerName, cfg.Form.FetchRetries, cfg.Form.FetchBackoff)

	var redisClient *redis.Client
	if cfg.Cache.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		provider = cache.NewRedisDayCache(provider, redisClient, logger, cfg.Cache.RedisTTL)
	}
	provider = cache.NewDayCache(provider, cfg.Cache.TTL)

	scanner := form.NewScanner(provider, logger, recorder, form.ScannerOptions{
		MaxLookbackDays: cfg.Form.MaxLookbackDays,
		MaxEmptyDays:    cfg.Form.MaxEmptyDays,
	})
	formSvc := form.NewService(scanner, cfg.Form.ScanTimeout)

	sink := buildSink(cfg, logger)
	oddsClient := odds.NewClient(odds.Config{
		APIKey:     cfg.Odds.APIKey,
		BaseURL:    cfg.Odds.BaseURL,
		Regions:    cfg.Odds.Regions,
		Bookmakers: cfg.Odds.Bookmakers,
	}, logger)
	schedSvc := schedule.NewService(provider, model.NewHashModel(), oddsClient, sink, logger)

	var refresher *poller.Refresher
	var statusFn func() poller.Status
	if cfg.Refresh.Enabled {
		refresher = poller.New(schedSvc, nil, logger, recorder, cfg.Refresh.Interval)
		statusFn = refresher.Status
	}

	handler := httpserver.NewHandler(formSvc, schedSvc, logger, statusFn)
	router := httpserver.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		refresher:     refresher,
		sink:          sink,
		redisClient:   redisClient,
		metricsStop:   metricsShutdown,
	}
}

func buildBaseProvider(cfg config.Config) (providers.ScoreboardProvider, string) {
	if cfg.Provider == "fixture" {
		p := fixture.New()
		return p, p.Name()
	}
	p := espn.NewClient(espn.Config{
		BaseURL:    cfg.ESPN.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.ESPN.Timeout},
	})
	return p, p.Name()
}

func buildSink(cfg config.Config, logger *slog.Logger) store.Store {
	if cfg.Store.DatabaseURL == "" {
		return store.NopStore{}
	}
	pg, err := store.NewPostgresStore(cfg.Store.DatabaseURL)
	if err != nil {
		if logger != nil {
			logger.Warn("database unavailable, persistence disabled", "error", err)
		}
		return store.NopStore{}
	}
	return pg
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recorder, promHandler, shutdown, err := metricsSetup(context.Background(), metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, telemetry disabled", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}
	if promHandler == nil {
		return recorder, nil, shutdown
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promHandler)
	srv := &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: mux}
	return recorder, netHTTPServer{srv: srv}, shutdown
}

// Run starts the refresher and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.refresher != nil {
		s.refresher.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.refresher != nil {
		if err := s.refresher.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("refresher stop failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.sink != nil {
		if err := s.sink.Close(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil && s.logger != nil {
			s.logger.Warn("redis close failed", "error", err)
		}
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if logger != nil {
				logger.Error(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

type netHTTPServer struct {
	srv *http.Server
}

func (n netHTTPServer) Addr() string { return n.srv.Addr }

func (n netHTTPServer) ListenAndServe() error { return n.srv.ListenAndServe() }

func (n netHTTPServer) Shutdown(ctx context.Context) error { return n.srv.Shutdown(ctx) }
