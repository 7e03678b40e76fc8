package handlers

import (
	"net/http"

	"github.com/durgaprasad9954/AI-Tokenizer/web"
)

// Docs handles GET /api/docs: the embedded Swagger UI page.
func (h *Handler) Docs(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, "docs.html", "text/html; charset=utf-8")
}

// SwaggerJSON handles GET /static/swagger.json: the OpenAPI document the
// Swagger UI loads.
func (h *Handler) SwaggerJSON(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, "swagger.json", "application/json")
}

func serveAsset(w http.ResponseWriter, name, contentType string) {
	content, err := web.Files.ReadFile(name)
	if err != nil {
		fail(w, http.StatusInternalServerError, "asset not found: "+name)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(content)
}
