// Package api sets up the HTTP routes for the tokenizer REST API.
package api

import (
	"net/http"

	"github.com/durgaprasad9954/AI-Tokenizer/internal/api/handlers"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/config"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/db"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/tokenizer"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/ws"
)

// Deps holds all dependencies injected into the API handlers.
type Deps struct {
	Vocab  *tokenizer.Vocabulary
	Store  *db.DB
	Hub    *ws.Hub
	Config *config.Config
}

// SetupRoutes registers all HTTP routes on the given ServeMux.
// Uses Go 1.22 method+pattern routing syntax.
func SetupRoutes(mux *http.ServeMux, deps *Deps) {
	h := handlers.New(deps.Vocab, deps.Store, deps.Hub, deps.Config)

	// ── Tokenization ─────────────────────────────────────────────────────────
	mux.HandleFunc("POST /api/tokenize", h.Tokenize)
	mux.HandleFunc("POST /api/count", h.Count)
	mux.HandleFunc("POST /api/batch", h.Batch)

	// ── Vocabulary ───────────────────────────────────────────────────────────
	mux.HandleFunc("GET /api/vocab", h.GetVocab)
	mux.HandleFunc("POST /api/vocab/reset", h.ResetVocab)

	// ── Usage accounting ─────────────────────────────────────────────────────
	mux.HandleFunc("GET /api/usage", h.Usage)

	// ── Docs + meta ──────────────────────────────────────────────────────────
	mux.HandleFunc("GET /api/docs", h.Docs)
	mux.HandleFunc("GET /static/swagger.json", h.SwaggerJSON)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /{$}", h.Home)

	// Everything else is a JSON 404.
	mux.HandleFunc("/", h.NotFound)
}
