package handlers

import (
	"net/http"
	"time"

	"github.com/durgaprasad9954/AI-Tokenizer/internal/db"
)

type usageResponse struct {
	Success       bool          `json:"success"`
	Period        string        `json:"period"`
	Since         string        `json:"since"`
	RetentionDays int           `json:"retention_days"`
	WSClients     int           `json:"ws_clients"`
	Rows          []db.UsageRow `json:"rows"`
	Timestamp     string        `json:"timestamp"`
}

// Usage handles GET /api/usage.
// Query params: period=daily|weekly|monthly (default daily).
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		fail(w, http.StatusServiceUnavailable, "usage accounting is disabled")
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "daily"
	}

	now := time.Now()
	var since string
	switch period {
	case "weekly":
		since = now.AddDate(0, 0, -7).Format("2006-01-02")
	case "monthly":
		since = now.AddDate(0, -1, 0).Format("2006-01-02")
	default:
		period = "daily"
		since = now.Format("2006-01-02")
	}

	rows, err := h.store.Usage(r.Context(), since)
	if err != nil {
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []db.UsageRow{}
	}

	wsClients := 0
	if h.hub != nil {
		wsClients = h.hub.ClientCount()
	}

	writeJSON(w, http.StatusOK, usageResponse{
		Success:       true,
		Period:        period,
		Since:         since,
		RetentionDays: h.config.UsageRetentionDays,
		WSClients:     wsClients,
		Rows:          rows,
		Timestamp:     timestamp(),
	})
}
