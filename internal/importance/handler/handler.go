package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"churnsight/internal/importance"
	"churnsight/pkg/platform/httputil"
)

// Handler serves the preloaded feature-importance rows. The rows never
// change for the life of the process, so there is nothing to look up per
// request.
type Handler struct {
	rows []importance.Row
}

// New constructs a handler over rows loaded at startup.
func New(rows []importance.Row) *Handler {
	return &Handler{rows: rows}
}

// Register mounts the importance endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/importance", h.HandleImportance)
}

// HandleImportance handles GET /api/importance requests.
func (h *Handler) HandleImportance(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"rows": h.rows})
}
