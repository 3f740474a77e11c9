package churn

import (
	"fmt"

	dErrors "churnsight/pkg/domain-errors"
)

// Scaler is the capability the pipeline needs from the loaded scaler
// artifact: one pre-fitted column-wise transform.
type Scaler interface {
	Columns() int
	Transform(row []float64) ([]float64, error)
}

// Pipeline converts a RawRecord into a ScaledRecord in two strictly ordered
// steps: categorical encoding first, then scaling of the numeric subset.
// The order matters: the scaler's column subset assumes categorical codes
// are already plain numbers.
type Pipeline struct {
	schema *Schema
	scaler Scaler
}

// NewPipeline validates that the scaler's width matches the schema's scaled
// subset and returns a ready pipeline.
func NewPipeline(schema *Schema, scaler Scaler) (*Pipeline, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema is required")
	}
	if scaler == nil {
		return nil, fmt.Errorf("scaler is required")
	}
	if got, want := scaler.Columns(), len(schema.ScaledNames()); got != want {
		return nil, fmt.Errorf("scaler fitted with %d columns, schema has %d scaled features", got, want)
	}
	return &Pipeline{schema: schema, scaler: scaler}, nil
}

// Transform produces a model-ready record. Unknown categorical labels and
// non-numeric values fail before the scaler is touched; the scaler runs
// exactly once per record.
func (p *Pipeline) Transform(raw RawRecord) (ScaledRecord, error) {
	out := make(ScaledRecord, p.schema.Len())

	// Step 1: categorical encoding. All lookups happen before any numeric
	// work so an unknown label never reaches the scaler.
	for _, f := range p.schema.Features() {
		v, ok := raw[f.Name]
		if !ok {
			return nil, dErrors.Newf(dErrors.CodeInvalidNumericInput, "missing value for %s", f.Name)
		}
		switch f.Kind {
		case KindCategorical:
			label, ok := v.(string)
			if !ok {
				label = fmt.Sprint(v)
			}
			table, _ := p.schema.Encoding(f.Name)
			code, ok := table[label]
			if !ok {
				return nil, dErrors.Newf(dErrors.CodeUnknownCategory, "unknown %s value %q", f.Name, label)
			}
			out[f.Name] = float64(code)
		case KindScaled, KindRaw:
			x, err := asFloat(v)
			if err != nil {
				return nil, dErrors.Newf(dErrors.CodeInvalidNumericInput, "field %s: %v", f.Name, err)
			}
			out[f.Name] = x
		}
	}

	// Step 2: scaling. Build the ordered scaled subset, run the fitted
	// transform once, write the normalized values back.
	names := p.schema.ScaledNames()
	row := make([]float64, len(names))
	for i, name := range names {
		row[i] = out[name]
	}
	scaled, err := p.scaler.Transform(row)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "scaler transform")
	}
	for i, name := range names {
		out[name] = scaled[i]
	}
	return out, nil
}
