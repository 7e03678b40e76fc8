package handlers

import (
	"net/http"

	"github.com/durgaprasad9954/AI-Tokenizer/internal/tokenizer"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/ws"
)

type tokenizeRequest struct {
	Text     string `json:"text"`
	Model    string `json:"model"`
	Strategy string `json:"strategy"`
}

type tokenizeResponse struct {
	Success    bool              `json:"success"`
	Tokens     []tokenizer.Token `json:"tokens"`
	TokenIDs   []int             `json:"token_ids"`
	TokenCount int               `json:"token_count"`
	CharCount  int               `json:"char_count"`
	Model      string            `json:"model"`
	Strategy   string            `json:"strategy"`
	VocabSize  int               `json:"vocab_size"`
	Timestamp  string            `json:"timestamp"`
}

// Tokenize handles POST /api/tokenize.
func (h *Handler) Tokenize(w http.ResponseWriter, r *http.Request) {
	var req tokenizeRequest
	if err := decode(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "No JSON data provided")
		return
	}
	if req.Text == "" {
		fail(w, http.StatusBadRequest, "Text field is required")
		return
	}
	if req.Model == "" {
		req.Model = "gpt-4"
	}

	strategy := tokenizer.ParseStrategy(req.Strategy)
	tokens := tokenizer.Tokenize(h.vocab, req.Text, strategy)

	ids := make([]int, 0, len(tokens))
	for _, t := range tokens {
		ids = append(ids, t.ID)
	}
	charCount := tokenizer.CharCount(req.Text)

	h.record(r, "tokenize", strategy, len(tokens), charCount)
	h.announce(ws.Event{Type: ws.TypeTokenize, Strategy: string(strategy), TokenCount: len(tokens)})

	writeJSON(w, http.StatusOK, tokenizeResponse{
		Success:    true,
		Tokens:     tokens,
		TokenIDs:   ids,
		TokenCount: len(tokens),
		CharCount:  charCount,
		Model:      req.Model,
		Strategy:   string(strategy),
		VocabSize:  h.vocab.Size(),
		Timestamp:  timestamp(),
	})
}
