package churn

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"churnsight/internal/churn/metrics"
	dErrors "churnsight/pkg/domain-errors"
	"churnsight/pkg/requestcontext"
)

// Service runs one linear pass per request: transform the raw record, score
// it, report the result. No step retries; a failed request ends there and
// the user resubmits.
type Service struct {
	pipeline *Pipeline
	scorer   *Scorer
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics attaches prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService wires the pipeline and scorer into a request-facing service.
func NewService(pipeline *Pipeline, scorer *Scorer, opts ...Option) (*Service, error) {
	if pipeline == nil {
		return nil, fmt.Errorf("pipeline is required")
	}
	if scorer == nil {
		return nil, fmt.Errorf("scorer is required")
	}
	svc := &Service{pipeline: pipeline, scorer: scorer}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc, nil
}

// Schema returns the feature schema the service scores against.
func (s *Service) Schema() *Schema { return s.pipeline.schema }

// Predict transforms and scores one record. Errors carry domain codes
// (unknown_category, invalid_numeric_input, scoring_failed) and abort the
// request at the step that raised them.
func (s *Service) Predict(ctx context.Context, raw RawRecord) (*PredictionResult, error) {
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	rec, err := s.pipeline.Transform(raw)
	if err != nil {
		s.metrics.IncrementFailure(string(dErrors.CodeOf(err)))
		return nil, err
	}

	result, err := s.scorer.Score(rec)
	if err != nil {
		s.metrics.IncrementFailure(string(dErrors.CodeOf(err)))
		return nil, err
	}

	s.metrics.IncrementPrediction(string(result.Label))
	s.metrics.ObservePredictLatency(time.Since(start))
	s.logger.InfoContext(ctx, "prediction scored",
		"request_id", requestID,
		"label", result.Label,
		"churn_probability", result.ChurnProbability(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
