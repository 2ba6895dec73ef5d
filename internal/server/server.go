// Package server exposes the ATS scorer over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/qerope/resume-ats/internal/ai"
	"github.com/qerope/resume-ats/internal/keywords"
)

const (
	defaultAddr         = ":8080"
	defaultMaxBodyBytes = 1 << 20
	shutdownTimeout     = 15 * time.Second
)

// Config holds server configuration.
type Config struct {
	Addr         string   `mapstructure:"addr"`
	CORSOrigins  []string `mapstructure:"cors-origins"`
	MaxBodyBytes int64    `mapstructure:"max-body-bytes"`
}

// Deps aggregates the collaborators used by the handlers.
type Deps struct {
	Logger   *zap.Logger
	Analyzer ai.Analyzer
	Keywords *keywords.Config
}

// Server wraps the HTTP server and its router.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New builds a server for cfg. A nil analyzer is replaced with one that
// reports ai.ErrNotConfigured.
func New(cfg Config, deps Deps) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      2 * time.Minute,
			IdleTimeout:       60 * time.Second,
		},
		logger: deps.Logger,
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(cfg Config, deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Analyzer == nil {
		deps.Analyzer = ai.Unconfigured{}
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	r := gin.New()
	r.Use(
		RequestID(),
		Logging(deps.Logger),
		Recovery(deps.Logger),
		CORS(cfg.CORSOrigins),
	)

	h := &handlers{
		logger:       deps.Logger,
		analyzer:     deps.Analyzer,
		keywords:     deps.Keywords,
		maxBodyBytes: cfg.MaxBodyBytes,
	}

	api := r.Group("/api/v1")
	api.GET("/health", h.health)
	api.POST("/score", h.score)
	api.POST("/analyze-job", h.analyzeJob)
	api.GET("/tips", h.tips)
	api.GET("/keywords/example", h.exampleKeywords)
	api.GET("/resume/example", h.exampleResume)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, deps.Logger, http.StatusNotFound, "not_found", "Route not found", nil)
	})

	return r
}
