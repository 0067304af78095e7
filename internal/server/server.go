// Package server assembles the HTTP service: middleware chain, provider
// registration, routes, and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/grignard-labs/calcd/internal/calculus"
	"github.com/grignard-labs/calcd/internal/config"
	calchttp "github.com/grignard-labs/calcd/internal/http"
	"github.com/grignard-labs/calcd/internal/logging"
	"github.com/grignard-labs/calcd/internal/middleware"
	"github.com/grignard-labs/calcd/internal/monitoring"
	calcprovider "github.com/grignard-labs/calcd/internal/providers/calculus"
	"github.com/grignard-labs/calcd/internal/providers/scimath"
	"github.com/grignard-labs/calcd/internal/service"
	"github.com/grignard-labs/calcd/internal/ws"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	registry   *service.Registry
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
}

// New builds a fully wired server from the config.
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("initializing calcd",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.Float64("tolerance", cfg.Engine.Tolerance),
	)

	metrics := monitoring.NewMetrics()

	engine := calculus.New(calculus.Params{
		Tol:      cfg.Engine.Tolerance,
		Step:     cfg.Engine.Step,
		MaxIter:  cfg.Engine.MaxIterations,
		MaxDepth: cfg.Engine.MaxDepth,
	}, logger.Logger)

	registry := service.NewRegistry()
	if err := registry.Register(calcprovider.NewProvider(engine)); err != nil {
		return nil, fmt.Errorf("failed to register calculus provider: %w", err)
	}
	if err := registry.Register(scimath.NewProvider()); err != nil {
		return nil, fmt.Errorf("failed to register scientific provider: %w", err)
	}
	stats := registry.Stats()
	logger.Info("registered providers",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := calchttp.NewHandlers(registry, metrics, logger)
	wsHandler := ws.NewHandler(registry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	router.POST("/calculus/evaluate", handlers.Evaluate)
	router.POST("/calculus/differentiate", handlers.Differentiate)
	router.POST("/calculus/integrate", handlers.Integrate)
	router.POST("/calculus/contour", handlers.Contour)
	router.POST("/calculus/root", handlers.FindRoot)

	router.GET("/stream", wsHandler.HandleConnection)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	err := s.httpServer.Shutdown(ctx)
	s.logger.Sync()
	return err
}

// Registry exposes the provider registry, used by the CLI front end.
func (s *Server) Registry() *service.Registry {
	return s.registry
}
