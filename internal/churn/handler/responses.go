package handler

import (
	"sort"
	"time"

	"churnsight/internal/churn"
)

// PredictResponse is the HTTP response for POST /api/predict.
type PredictResponse struct {
	Label                string    `json:"label"`
	ChurnProbability     float64   `json:"churn_probability"`
	RetentionProbability float64   `json:"retention_probability"`
	EvaluatedAt          time.Time `json:"evaluated_at"`
}

// FromResult converts a domain PredictionResult to an HTTP response.
func FromResult(result *churn.PredictionResult, at time.Time) *PredictResponse {
	return &PredictResponse{
		Label:                string(result.Label),
		ChurnProbability:     result.ChurnProbability(),
		RetentionProbability: result.RetentionProbability(),
		EvaluatedAt:          at,
	}
}

// SchemaResponse is the HTTP response for GET /api/schema.
type SchemaResponse struct {
	Fields []FieldResponse `json:"fields"`
}

// FieldResponse describes one form field.
type FieldResponse struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
	Default any      `json:"default,omitempty"`
}

// FromSchema converts the feature schema to its HTTP representation,
// preserving feature order and sorting categorical options for stable
// rendering.
func FromSchema(schema *churn.Schema) *SchemaResponse {
	resp := &SchemaResponse{Fields: make([]FieldResponse, 0, schema.Len())}
	for _, f := range schema.Features() {
		field := FieldResponse{Name: f.Name, Kind: string(f.Kind)}
		if f.Kind == churn.KindCategorical {
			field.Options = schema.Options(f.Name)
			sort.Strings(field.Options)
		}
		if def, ok := schema.Default(f.Name); ok {
			field.Default = def
		}
		resp.Fields = append(resp.Fields, field)
	}
	return resp
}
