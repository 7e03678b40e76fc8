// AI Tokenizer API — HTTP service for text tokenization with a shared
// in-memory vocabulary. Entry point: wires all packages and starts the
// HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/durgaprasad9954/AI-Tokenizer/internal/api"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/api/handlers"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/config"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/db"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/platform"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/scheduler"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/tokenizer"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/ws"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	log.Printf("%s %s starting…", handlers.ServiceName, Version)

	// ── 1. Load configuration ────────────────────────────────────────────────
	cfg := config.Load()
	log.Printf("Config: port=%s workDir=%s", cfg.Port, cfg.WorkDir)

	if err := platform.EnsureDir(cfg.WorkDir); err != nil {
		log.Fatalf("EnsureDir %s: %v", cfg.WorkDir, err)
	}
	if err := platform.EnsureDir(filepath.Dir(cfg.DBPath)); err != nil {
		log.Fatalf("EnsureDir %s: %v", filepath.Dir(cfg.DBPath), err)
	}

	// ── 2. Open usage database + migrate ─────────────────────────────────────
	database, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("db.New: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatalf("db.Migrate: %v", err)
	}
	log.Printf("Usage database ready: %s", cfg.DBPath)

	// Root context — cancelled on shutdown signal.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── 3. Vocabulary registry ───────────────────────────────────────────────
	// One process-wide instance, shared by every request until reset.
	vocab := tokenizer.NewVocabulary()

	// ── 4. WebSocket hub ─────────────────────────────────────────────────────
	hub := ws.NewHub()
	go hub.Run(ctx)

	// ── 5. Retention scheduler ───────────────────────────────────────────────
	schedEngine := scheduler.New(database, cfg.PruneSchedule, cfg.UsageRetentionDays)
	if err := schedEngine.Start(ctx); err != nil {
		log.Printf("scheduler.Start: %v", err)
	}

	// ── 6. HTTP router ───────────────────────────────────────────────────────
	mux := http.NewServeMux()

	api.SetupRoutes(mux, &api.Deps{
		Vocab:  vocab,
		Store:  database,
		Hub:    hub,
		Config: cfg,
	})

	// Live activity feed.
	mux.HandleFunc("GET /ws", hub.ServeWS)

	// Middleware chain, outermost first.
	handler := loggingMiddleware(recoveryMiddleware(corsMiddleware(requestIDMiddleware(mux))), cfg.Debug)

	// ── 7. Start HTTP server ─────────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Printf("Received %s — shutting down…", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP shutdown: %v", err)
		}
	}()

	log.Printf("Server:     http://localhost:%s", cfg.Port)
	log.Printf("Swagger UI: http://localhost:%s/api/docs", cfg.Port)
	log.Printf("Health:     http://localhost:%s/health", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("ListenAndServe: %v", err)
	}
	log.Printf("%s stopped.", handlers.ServiceName)
}

// loggingMiddleware logs each request; debug mode adds the request ID and
// remote address.
func loggingMiddleware(next http.Handler, debug bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if debug {
			log.Printf("%s %s %s id=%s from=%s", r.Method, r.URL.Path,
				time.Since(start), r.Header.Get("X-Request-ID"), r.RemoteAddr)
			return
		}
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// recoveryMiddleware recovers from panics and returns 500.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				log.Printf("panic: %v", rv)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"success":false,"error":"Internal server error","message":"An internal error occurred. Please try again later."}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware allows cross-origin requests from the frontend.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware assigns every request an ID, echoed in the response
// and recorded with usage rows.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
