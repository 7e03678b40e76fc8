package handlers

import (
	"net/http"

	"github.com/durgaprasad9954/AI-Tokenizer/internal/ws"
)

type vocabResponse struct {
	Success    bool           `json:"success"`
	VocabSize  int            `json:"vocab_size"`
	Vocabulary map[string]int `json:"vocabulary"`
	Timestamp  string         `json:"timestamp"`
}

// GetVocab handles GET /api/vocab.
func (h *Handler) GetVocab(w http.ResponseWriter, r *http.Request) {
	snap := h.vocab.Snapshot()
	writeJSON(w, http.StatusOK, vocabResponse{
		Success:    true,
		VocabSize:  len(snap),
		Vocabulary: snap,
		Timestamp:  timestamp(),
	})
}

type resetResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ResetVocab handles POST /api/vocab/reset.
func (h *Handler) ResetVocab(w http.ResponseWriter, r *http.Request) {
	h.vocab.Reset()
	h.announce(ws.Event{Type: ws.TypeVocabReset})
	writeJSON(w, http.StatusOK, resetResponse{
		Success:   true,
		Message:   "Vocabulary reset successfully",
		Timestamp: timestamp(),
	})
}
