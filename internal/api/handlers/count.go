package handlers

import (
	"net/http"

	"github.com/durgaprasad9954/AI-Tokenizer/internal/tokenizer"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/ws"
)

type countRequest struct {
	Text     string `json:"text"`
	Strategy string `json:"strategy"`
}

type countResponse struct {
	Success    bool   `json:"success"`
	TokenCount int    `json:"token_count"`
	CharCount  int    `json:"char_count"`
	Strategy   string `json:"strategy"`
	Timestamp  string `json:"timestamp"`
}

// Count handles POST /api/count.
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if err := decode(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "No JSON data provided")
		return
	}
	if req.Text == "" {
		fail(w, http.StatusBadRequest, "Text field is required")
		return
	}

	strategy := tokenizer.ParseStrategy(req.Strategy)
	count := tokenizer.Count(h.vocab, req.Text, strategy)
	charCount := tokenizer.CharCount(req.Text)

	h.record(r, "count", strategy, count, charCount)
	h.announce(ws.Event{Type: ws.TypeCount, Strategy: string(strategy), TokenCount: count})

	writeJSON(w, http.StatusOK, countResponse{
		Success:    true,
		TokenCount: count,
		CharCount:  charCount,
		Strategy:   string(strategy),
		Timestamp:  timestamp(),
	})
}
