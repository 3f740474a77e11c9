package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the churn scoring module.
type Metrics struct {
	// Predictions by resulting label
	Predictions *prometheus.CounterVec

	// Requests that failed before or during scoring, by error code
	Failures *prometheus.CounterVec

	// Full transform + score latency
	PredictLatency prometheus.Histogram
}

// New creates a Metrics instance with all churn module metrics registered.
func New() *Metrics {
	return &Metrics{
		Predictions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "churnsight_predictions_total",
			Help: "Total completed predictions by label",
		}, []string{"label"}),

		Failures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "churnsight_prediction_failures_total",
			Help: "Total failed prediction requests by error code",
		}, []string{"code"}),

		PredictLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "churnsight_predict_duration_seconds",
			Help:    "Duration of one transform and scoring pass",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncrementPrediction records a completed prediction.
func (m *Metrics) IncrementPrediction(label string) {
	if m != nil {
		m.Predictions.WithLabelValues(label).Inc()
	}
}

// IncrementFailure records a failed request.
func (m *Metrics) IncrementFailure(code string) {
	if m != nil {
		m.Failures.WithLabelValues(code).Inc()
	}
}

// ObservePredictLatency records the duration of one full pass.
func (m *Metrics) ObservePredictLatency(d time.Duration) {
	if m != nil {
		m.PredictLatency.Observe(d.Seconds())
	}
}
