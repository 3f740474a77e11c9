package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"churnsight/internal/churn"
	"churnsight/pkg/platform/httputil"
	"churnsight/pkg/requestcontext"
)

// Service defines the interface for churn scoring operations.
type Service interface {
	Predict(ctx context.Context, raw churn.RawRecord) (*churn.PredictionResult, error)
	Schema() *churn.Schema
}

// Handler wires scoring endpoints to the churn service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a churn handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts scoring endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/predict", h.HandlePredict)
	r.Get("/api/schema", h.HandleSchema)
}

// HandlePredict handles POST /api/predict requests.
func (h *Handler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PredictRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	raw, err := req.Prepare(h.service.Schema())
	if err != nil {
		h.logger.WarnContext(ctx, "predict input rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Predict(ctx, raw)
	if err != nil {
		h.logger.ErrorContext(ctx, "prediction failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result, requestcontext.Now(ctx)))
}

// HandleSchema handles GET /api/schema requests. The form renders its fields
// from this response so the field list lives in exactly one place.
func (h *Handler) HandleSchema(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromSchema(h.service.Schema()))
}
