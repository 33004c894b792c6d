package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"roster-service/internal/config"
	"roster-service/internal/feed"
	httpserver "roster-service/internal/http"
	"roster-service/internal/http/handlers"
	"roster-service/internal/http/middleware"
	"roster-service/internal/logging"
	"roster-service/internal/metrics"
	"roster-service/internal/providers"
	"roster-service/internal/providers/balldontlie"
	"roster-service/internal/roster"
	"roster-service/internal/session"
	"roster-service/internal/storage"
)

var metricsSetup = metrics.Setup

// Server owns the engines and the HTTP surface in front of them.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	rosterStore   *roster.Store
	sessionStore  *session.Store
	feedCtrl      *feed.Controller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default storage and feed wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithStorage(cfg, logger, storage.NewFSStore(cfg.DataDir))
}

func newServerWithStorage(cfg config.Config, logger *slog.Logger, store storage.Store) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	rosterStore := roster.NewStore(store, logger, recorder)
	sessionStore := session.NewStore(store, logger)
	feedCtrl := buildFeed(cfg, logger, recorder)
	httpSrv := buildHTTPServer(cfg, rosterStore, feedCtrl, sessionStore, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		rosterStore:   rosterStore,
		sessionStore:  sessionStore,
		feedCtrl:      feedCtrl,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildFeed(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *feed.Controller {
	client := balldontlie.NewClient(balldontlie.Config{
		BaseURL: cfg.Balldontlie.BaseURL,
		APIKey:  cfg.Balldontlie.APIKey,
	})
	source := providers.NewLoggingSource(client, logger, recorder, client.SourceName())

	return feed.NewController(feed.Config{
		Source:      source,
		Logger:      logger,
		Metrics:     recorder,
		APIKey:      cfg.Balldontlie.APIKey,
		PerPage:     cfg.Feed.PerPage,
		MaxPages:    cfg.Feed.MaxPages,
		MinInterval: cfg.Feed.MinInterval,
		Backoff:     cfg.Feed.Backoff,
	})
}

func buildHTTPServer(cfg config.Config, rosterStore *roster.Store, feedCtrl *feed.Controller, sessionStore *session.Store, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(rosterStore, feedCtrl, sessionStore, logger)
	router := httpserver.NewRouter(handler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	})
	wrapped := middleware.LoggingMiddleware(logger, recorder, corsWrapper.Handler(router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
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

// Run starts the HTTP server (and the metrics server when configured), then
// waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
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

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
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
