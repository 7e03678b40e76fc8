package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/durgaprasad9954/AI-Tokenizer/internal/tokenizer"
	"github.com/durgaprasad9954/AI-Tokenizer/internal/ws"
)

type batchRequest struct {
	// Raw so a non-array value can be rejected with the right message
	// instead of a generic decode error.
	Texts    json.RawMessage `json:"texts"`
	Strategy string          `json:"strategy"`
}

type batchResult struct {
	Text       string            `json:"text"`
	Tokens     []tokenizer.Token `json:"tokens"`
	TokenCount int               `json:"token_count"`
	CharCount  int               `json:"char_count"`
}

type batchResponse struct {
	Success    bool          `json:"success"`
	Results    []batchResult `json:"results"`
	TotalTexts int           `json:"total_texts"`
	Timestamp  string        `json:"timestamp"`
}

// Batch handles POST /api/batch. All texts share the vocabulary, so a token
// repeated across texts keeps one ID. There are no partial results — any
// failure fails the whole request.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decode(r, &req); err != nil {
		fail(w, http.StatusBadRequest, "No JSON data provided")
		return
	}
	if len(req.Texts) == 0 {
		fail(w, http.StatusBadRequest, "texts must be a non-empty array")
		return
	}
	var texts []string
	if err := json.Unmarshal(req.Texts, &texts); err != nil || len(texts) == 0 {
		fail(w, http.StatusBadRequest, "texts must be a non-empty array")
		return
	}

	strategy := tokenizer.ParseStrategy(req.Strategy)
	results := make([]batchResult, 0, len(texts))
	totalTokens, totalChars := 0, 0

	for _, text := range texts {
		tokens := tokenizer.Tokenize(h.vocab, text, strategy)
		charCount := tokenizer.CharCount(text)
		totalTokens += len(tokens)
		totalChars += charCount
		results = append(results, batchResult{
			Text:       text,
			Tokens:     tokens,
			TokenCount: len(tokens),
			CharCount:  charCount,
		})
	}

	h.record(r, "batch", strategy, totalTokens, totalChars)
	h.announce(ws.Event{
		Type:       ws.TypeBatch,
		Strategy:   string(strategy),
		TokenCount: totalTokens,
		TextCount:  len(texts),
	})

	writeJSON(w, http.StatusOK, batchResponse{
		Success:    true,
		Results:    results,
		TotalTexts: len(texts),
		Timestamp:  timestamp(),
	})
}
