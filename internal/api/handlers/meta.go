package handlers

import "net/http"

type homeResponse struct {
	Message       string            `json:"message"`
	Version       string            `json:"version"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}

// Home handles GET / (exact path only).
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	writeJSON(w, http.StatusOK, homeResponse{
		Message: ServiceName,
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"tokenize": "/api/tokenize (POST)",
			"count":    "/api/count (POST)",
			"batch":    "/api/batch (POST)",
			"vocab":    "/api/vocab (GET)",
			"usage":    "/api/usage (GET)",
			"health":   "/health (GET)",
			"docs":     "/api/docs (Swagger UI)",
		},
		Documentation: scheme + "://" + r.Host + "/api/docs",
	})
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Version:   ServiceVersion,
		Timestamp: timestamp(),
	})
}

// NotFound is the catch-all for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Success: false,
		Error:   "Endpoint not found",
		Message: "The requested URL was not found on the server.",
	})
}
