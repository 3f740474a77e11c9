package churn

import (
	"fmt"

	dErrors "churnsight/pkg/domain-errors"
)

// Classifier is the capability the scorer needs from the loaded model
// artifact. PredictProba returns [p_retain, p_churn].
type Classifier interface {
	PredictProba(row []float64) ([2]float64, error)
}

// Scorer vectorizes a ScaledRecord in schema order and calls the classifier
// once. The label is derived from the returned probability vector, never
// recomputed, so label and probabilities cannot disagree.
type Scorer struct {
	schema *Schema
	model  Classifier
}

// NewScorer returns a scorer bound to one schema and one loaded model.
func NewScorer(schema *Schema, model Classifier) (*Scorer, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema is required")
	}
	if model == nil {
		return nil, fmt.Errorf("model is required")
	}
	return &Scorer{schema: schema, model: model}, nil
}

// Score runs one inference call. Model failures surface as scoring_failed
// with the original message attached; the request aborts but the process
// keeps serving.
func (s *Scorer) Score(rec ScaledRecord) (*PredictionResult, error) {
	row := make([]float64, 0, s.schema.Len())
	for _, f := range s.schema.Features() {
		v, ok := rec[f.Name]
		if !ok {
			return nil, dErrors.Newf(dErrors.CodeScoringFailed, "record is missing %s", f.Name)
		}
		row = append(row, v)
	}

	probs, err := s.model.PredictProba(row)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeScoringFailed, "model prediction failed")
	}

	label := LabelRetained
	if probs[1] >= probs[0] {
		label = LabelChurned
	}
	return &PredictionResult{Label: label, Probabilities: probs}, nil
}
