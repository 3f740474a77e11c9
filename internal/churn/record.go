package churn

import (
	"fmt"
	"strconv"
)

// RawRecord is one value per schema entry as collected from the form:
// strings for categorical labels, numbers for everything else. It is built
// per request and never mutated after it reaches the pipeline.
type RawRecord map[string]any

// ScaledRecord is the model-ready record: categorical codes and raw fields
// as plain numbers, scaled fields normalized by the fitted scaler.
type ScaledRecord map[string]float64

// Label is the predicted class name.
type Label string

const (
	LabelChurned  Label = "Churned"
	LabelRetained Label = "Retained"
)

// PredictionResult is the outcome of one scoring call. Probabilities are
// [p_retain, p_churn] and sum to 1; Label is Churned iff class index 1 won.
// Results are ephemeral and never persisted.
type PredictionResult struct {
	Label         Label
	Probabilities [2]float64
}

// ChurnProbability returns p(churn).
func (r *PredictionResult) ChurnProbability() float64 { return r.Probabilities[1] }

// RetentionProbability returns p(retain).
func (r *PredictionResult) RetentionProbability() float64 { return r.Probabilities[0] }

// asFloat coerces a raw value to float64. Numeric strings are accepted
// because form fields arrive as text; anything else is rejected by the
// pipeline as invalid_numeric_input.
func asFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not numeric", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}
