package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pipecraft/platform-shell/internal/auth"
	"github.com/pipecraft/platform-shell/internal/pkg/httputil"
)

// SetupRoutes configures all API routes. The basic-auth gate applies only to
// the static dashboard pages; API routes carry their own Authorization
// headers through to the sales engine and are left open here.
//
// Health routes are registered separately by Server.RegisterHealthRoutes once
// the server's dependencies are wired.
func SetupRoutes(h *Handlers, gate *auth.Gate) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// Server identity header
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Server-Identity", "platform-shell-v1.0")
			next.ServeHTTP(w, req)
		})
	})

	// CORS - allow credentials so the dashboard can send Authorization headers
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(h),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Unhandled methods on known paths get a JSON 405, not the default text
	r.MethodNotAllowed(httputil.MethodNotAllowed)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/{campaignID}/contact-stats", h.HandleContactStats)
		})

		r.Route("/seo", func(r chi.Router) {
			r.Get("/pages", h.HandleSEOPages)
		})

		r.Route("/v1/campaigns", func(r chi.Router) {
			r.Get("/attention", h.HandleAttentionCampaigns)
			r.Get("/notices", h.HandleNotices)

			r.Route("/{campaignID}", func(r chi.Router) {
				r.Post("/run", h.HandleDeprecatedRun)
				r.Get("/metrics", h.HandleCampaignMetrics)
				r.Get("/throughput", h.HandleCampaignThroughput)
				r.Get("/readiness", h.HandleCampaignReadiness)
				r.Get("/execution-status", h.HandleExecutionStatus)
			})
		})
	})

	// Serve static files for the dashboard (SPA with fallback to index.html),
	// behind the basic-auth gate when credentials are configured.
	spaHandler(r, staticDir(h), gate)

	return r
}

func allowedOrigins(h *Handlers) []string {
	if h != nil && h.cfg != nil && len(h.cfg.CORS.AllowedOrigins) > 0 {
		return h.cfg.CORS.AllowedOrigins
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func staticDir(h *Handlers) string {
	if h != nil && h.cfg != nil && h.cfg.Static.Dir != "" {
		return h.cfg.Static.Dir
	}
	return "./web/dist"
}

// spaHandler serves static files and falls back to index.html for SPA routing.
func spaHandler(r chi.Router, staticPath string, gate *auth.Gate) {
	serve := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		// API and health routes never fall through to the SPA
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/health") {
			http.NotFound(w, req)
			return
		}

		// Try to serve the file directly
		filePath := filepath.Join(staticPath, path)
		if _, err := os.Stat(filePath); err == nil {
			http.ServeFile(w, req, filePath)
			return
		}

		// For SPA routing, serve index.html for unknown paths
		http.ServeFile(w, req, filepath.Join(staticPath, "index.html"))
	})

	r.Method(http.MethodGet, "/*", gate.Middleware(serve))
}
