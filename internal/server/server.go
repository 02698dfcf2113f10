package server

import (
	"context"
	"log/slog"
	"net/http"

	"nba-player-stats-service/internal/aggregate"
	"nba-player-stats-service/internal/app/players"
	"nba-player-stats-service/internal/config"
	"nba-player-stats-service/internal/domain/stats"
	httpserver "nba-player-stats-service/internal/http"
	"nba-player-stats-service/internal/http/handlers"
	"nba-player-stats-service/internal/http/middleware"
	"nba-player-stats-service/internal/logging"
	"nba-player-stats-service/internal/metrics"
	"nba-player-stats-service/internal/providers"
	"nba-player-stats-service/internal/store"
	"nba-player-stats-service/internal/warmer"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	cache          *store.SnapshotCache
	playersService *players.Service
	httpServer     httpServer
	metricsServer  httpServer
	warmer         Warmer
	metricsStop    func(context.Context) error
}

// New constructs a server with default provider and cache wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DatasetProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DatasetProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}
	cache := store.New(datasetLoader(provider), cfg.CacheTTL, logger, recorder)
	playerSvc := players.NewService(cache)

	var warm Warmer
	if cfg.WarmEnabled {
		warm = warmer.New(cache, logger, cfg.WarmInterval)
	}
	httpSrv := buildHTTPServer(cfg, playerSvc, cache, logger, recorder, warm)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		cache:          cache,
		playersService: playerSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		warmer:         warm,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, cache *store.SnapshotCache, httpSrv httpServer, warm Warmer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		cache:      cache,
		httpServer: httpSrv,
		warmer:     warm,
	}
}

// datasetLoader adapts a dataset provider into the cache's loader: fetch the
// raw tables, then aggregate them into a snapshot collection.
func datasetLoader(provider providers.DatasetProvider) store.LoaderFunc {
	return func(ctx context.Context) (*stats.Snapshot, error) {
		dataset, err := provider.FetchDataset(ctx)
		if err != nil {
			return nil, err
		}
		collection := aggregate.Build(dataset.Games, dataset.Players)
		return &stats.Snapshot{Collection: collection}, nil
	}
}

func buildHTTPServer(cfg config.Config, playerSvc *players.Service, cache *store.SnapshotCache, logger *slog.Logger, recorder *metrics.Recorder, warm Warmer) httpServer {
	var statusFn func() warmer.Status
	if warm != nil {
		statusFn = warm.Status
	}

	handler := handlers.NewHandler(playerSvc, logger, statusFn)
	router := httpserver.NewRouter(handler)
	// Optionally mount admin refresh endpoint if token is set.
	if cfg.AdminToken != "" {
		admin := handlers.NewAdminHandler(cache, cfg.AdminToken, logger)
		if mux, ok := router.(*http.ServeMux); ok {
			mux.HandleFunc("/admin/refresh", admin.RefreshSnapshot)
		}
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.CORSMiddleware(router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the warmer and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.warmer != nil {
		s.warmer.Start(ctx)
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

	if s.warmer != nil {
		if err := s.warmer.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop warmer", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
