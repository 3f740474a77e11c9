// Package web serves the single-page form UI. Rendering is a thin
// collaborator over the JSON API: the form fields come from /api/schema,
// the chart from /api/importance, and predictions from /api/predict, so no
// domain knowledge lives in the template.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// Handler renders the embedded page.
type Handler struct {
	tmpl         *template.Template
	logger       *slog.Logger
	dashboardURL string
}

// New parses the embedded template. The dashboard URL is optional; when
// empty the embed section is omitted.
func New(dashboardURL string, logger *slog.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	return &Handler{tmpl: tmpl, logger: logger, dashboardURL: dashboardURL}, nil
}

// Register mounts the page route on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleIndex)
}

// HandleIndex handles GET / requests.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		DashboardURL string
	}{DashboardURL: h.dashboardURL}
	if err := h.tmpl.Execute(w, data); err != nil {
		h.logger.ErrorContext(r.Context(), "render index page", "error", err)
	}
}
