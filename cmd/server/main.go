package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pipecraft/platform-shell/internal/api"
	"github.com/pipecraft/platform-shell/internal/auth"
	"github.com/pipecraft/platform-shell/internal/cache"
	"github.com/pipecraft/platform-shell/internal/config"
	"github.com/pipecraft/platform-shell/internal/funnel"
	"github.com/pipecraft/platform-shell/internal/repository/postgres"
	"github.com/pipecraft/platform-shell/internal/salesengine"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

func extractHost(dsn string) string {
	at := strings.Index(dsn, "@")
	if at < 0 {
		return "(unknown)"
	}
	rest := dsn[at+1:]
	slash := strings.Index(rest, "/")
	if slash >= 0 {
		rest = rest[:slash]
	}
	return rest
}

func main() {
	log.Println("╔════════════════════════════════════════════════════════════╗")
	log.Println("║  Platform Shell (cmd/server/main.go)                      ║")
	log.Println("║  Dashboard backend with sales engine proxy                ║")
	log.Println("╚════════════════════════════════════════════════════════════╝")

	// Load configuration
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		log.Println("[config] DATABASE_URL env override active")
	}

	// Pre-flight check: verify the target port is available
	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
		cfg.Server.Port = port
	}
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}
	log.Printf("Pre-flight check passed: port %d is available", port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Basic-auth gate for the dashboard pages
	gate := auth.NewGate(cfg.Dashboard.Username, cfg.Dashboard.Password)
	if gate.Enabled() {
		log.Println("Dashboard basic-auth gate enabled")
	}

	server := api.NewServer(cfg, gate)

	// Contact funnel stats need PostgreSQL; without it the stats endpoint
	// serves an all-zero breakdown.
	var db *sql.DB
	if cfg.Database.URL != "" {
		log.Println("Initializing PostgreSQL connection...")

		dbURL := cfg.Database.URL
		sep := "?"
		if strings.Contains(dbURL, "?") {
			sep = "&"
		}
		if !strings.Contains(dbURL, "connect_timeout") {
			dbURL += fmt.Sprintf("%sconnect_timeout=%d", sep, cfg.Database.ConnectTimeoutSeconds)
			sep = "&"
		}
		dbURL += sep + "options=-c%20statement_timeout%3D15000%20-c%20idle_in_transaction_session_timeout%3D15000"
		log.Printf("DB URL host portion: ...@%s/...", extractHost(dbURL))

		db, err = sql.Open("postgres", dbURL)
		if err != nil {
			log.Printf("Warning: Failed to open database: %v — stats endpoint serves zeros", err)
			db = nil
		} else {
			// Set pool limits early to prevent connection exhaustion
			db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
			db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
			db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime())
			db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime())

			server.SetFunnelService(funnel.NewService(postgres.NewContactRepo(db)))
			server.SetDB(db)

			// Test the connection with a timeout; a down database is not
			// fatal, stats requests will just report unavailable.
			pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
			if err := db.PingContext(pingCtx); err != nil {
				log.Printf("Warning: Database ping failed: %v — stats routes registered anyway", err)
			} else {
				log.Println("Database connected successfully")
			}
			pingCancel()
		}
	} else {
		log.Println("Database not configured (DATABASE_URL not set) — stats endpoint serves zeros")
	}

	// Redis response cache for proxied engine reads
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})
		} else {
			redisClient = redis.NewClient(opts)
		}
		pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Redis connection failed (%s): %v — proxy responses not cached", cfg.Redis.URL, err)
			redisClient.Close()
			redisClient = nil
		} else {
			server.SetRedisClient(redisClient)
			server.SetCache(cache.New(redisClient, cfg.Redis.CacheTTL()))
			log.Printf("Redis connected: %s (proxy cache TTL %s)", cfg.Redis.URL, cfg.Redis.CacheTTL())
		}
		pingCancel()
	} else {
		log.Println("Redis not configured (REDIS_URL not set) — proxy responses not cached")
	}

	// Sales engine proxy target
	if cfg.SalesEngine.BaseURL != "" {
		server.SetEngineClient(salesengine.NewClient(cfg.SalesEngine.BaseURL, cfg.SalesEngine.Timeout()))
		log.Printf("Sales engine proxy configured: %s (timeout %s)", cfg.SalesEngine.BaseURL, cfg.SalesEngine.Timeout())
	} else {
		log.Println("Sales engine not configured (SALES_ENGINE_URL not set) — proxy routes serve mock payloads")
	}

	// Register comprehensive health routes (must be after all Set* calls so
	// the checker can access db, redis, and the engine client)
	server.RegisterHealthRoutes()
	log.Println("Health check routes registered: /health, /health/live, /health/ready")

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s:%d", host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Println("All services initialized — server is ready")

	<-done
	log.Println("Shutting down...")

	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
