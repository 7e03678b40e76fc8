// Package handlers provides HTTP handler implementations for the tokenizer REST API.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/durgaprasad9954/AI-Tokenizer/internal/config"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/db"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/tokenizer"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/ws"
)

// Service identity reported by / and /health.
const (
	ServiceName    = "AI Tokenizer API"
	ServiceVersion = "1.0.0"
)

// Handler holds all shared dependencies for API handler methods.
type Handler struct {
	vocab  *tokenizer.Vocabulary
	store  *db.DB
	hub    *ws.Hub
	config *config.Config
}

// New creates a Handler with all dependencies. store and hub may be nil;
// usage accounting and live events are then skipped.
func New(vocab *tokenizer.Vocabulary, store *db.DB, hub *ws.Hub, cfg *config.Config) *Handler {
	return &Handler{
		vocab:  vocab,
		store:  store,
		hub:    hub,
		config: cfg,
	}
}

// ── Response helpers ──────────────────────────────────────────────────────────

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handlers: encode response: %v", err)
	}
}

func fail(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Success: false, Error: msg})
}

func decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// record writes one usage accounting row. Errors are logged, never surfaced —
// accounting must not fail a tokenization request.
func (h *Handler) record(r *http.Request, endpoint string, strategy tokenizer.Strategy, tokens, chars int) {
	if h.store == nil {
		return
	}
	rec := db.RequestRecord{
		RequestID:  r.Header.Get("X-Request-ID"),
		Endpoint:   endpoint,
		Strategy:   string(strategy),
		TokenCount: tokens,
		CharCount:  chars,
		Date:       time.Now().Format("2006-01-02"),
	}
	if err := h.store.RecordRequest(r.Context(), rec); err != nil {
		log.Printf("handlers: record %s request: %v", endpoint, err)
	}
}

// announce broadcasts a live activity event to WebSocket clients.
func (h *Handler) announce(ev ws.Event) {
	if h.hub == nil {
		return
	}
	ev.VocabSize = h.vocab.Size()
	h.hub.Broadcast(ev)
}
