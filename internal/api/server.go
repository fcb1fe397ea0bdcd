package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/pipecraft/platform-shell/internal/auth"
	"github.com/pipecraft/platform-shell/internal/cache"
	"github.com/pipecraft/platform-shell/internal/config"
	"github.com/pipecraft/platform-shell/internal/funnel"
	"github.com/pipecraft/platform-shell/internal/salesengine"
)

// Server is the HTTP server for the platform shell.
type Server struct {
	config   *config.Config
	handlers *Handlers
	gate     *auth.Gate
	router   *chi.Mux
	server   *http.Server

	db          *sql.DB
	redisClient *redis.Client
}

// NewServer creates a server with routes configured. Subsystems are attached
// afterwards via the Set* methods; routes read the handler fields at request
// time, so late wiring is safe.
func NewServer(cfg *config.Config, gate *auth.Gate) *Server {
	h := NewHandlers(cfg)
	router := SetupRoutes(h, gate)

	return &Server{
		config:   cfg,
		handlers: h,
		gate:     gate,
		router:   router,
	}
}

// SetFunnelService wires the contact funnel aggregation service.
func (s *Server) SetFunnelService(svc *funnel.Service) {
	if s.handlers != nil {
		s.handlers.SetFunnelService(svc)
	}
}

// SetEngineClient wires the sales engine client.
func (s *Server) SetEngineClient(client *salesengine.Client) {
	if s.handlers != nil {
		s.handlers.SetEngineClient(client)
	}
}

// SetCache wires the proxy response cache.
func (s *Server) SetCache(c *cache.Cache) {
	if s.handlers != nil {
		s.handlers.SetCache(c)
	}
}

// SetDB stores the database pool for health checks.
func (s *Server) SetDB(db *sql.DB) {
	s.db = db
}

// SetRedisClient stores the Redis client for health checks.
func (s *Server) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// RegisterHealthRoutes creates a HealthChecker from the server's dependencies
// and registers the health routes. Call this after all Set* methods have been
// invoked so the checker sees every available dependency.
func (s *Server) RegisterHealthRoutes() {
	var engine *salesengine.Client
	if s.handlers != nil {
		engine = s.handlers.engine
	}
	hc := NewHealthChecker(s.db, s.redisClient, engine)
	s.router.Get("/health", hc.HandleHealth)
	s.router.Get("/health/live", hc.HandleLiveness)
	s.router.Get("/health/ready", hc.HandleReadiness)
	s.router.Get("/health/db-stats", hc.HandleDBStats)
}

// ListenAndServe starts the HTTP server on the configured host and port.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.GetHost(), s.config.Server.Port)

	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,

		// The shell serves small JSON payloads and static assets only, so
		// the timeouts are tight compared to an upload-heavy service.
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
