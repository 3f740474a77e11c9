package handler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"

	"churnsight/internal/churn"
	dErrors "churnsight/pkg/domain-errors"
)

// PredictRequest is the HTTP request body for POST /api/predict: a JSON
// object with one member per schema field. Absent fields take the schema
// defaults, so an empty object scores the baseline customer.
type PredictRequest struct {
	fields map[string]any
}

// UnmarshalJSON keeps the raw field map so numeric-vs-string typing is
// decided against the schema, not the JSON decoder.
func (r *PredictRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.fields)
}

// Validate rejects structurally broken bodies.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *PredictRequest) Validate() error {
	if r == nil || r.fields == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body must be a JSON object")
	}
	return nil
}

// Prepare applies defaults and validates field values against the schema,
// returning the raw record for the pipeline. Categorical labels must be in
// the closed option set; numeric fields must parse as numbers. Unknown
// field names are rejected so typos do not silently fall back to defaults.
func (r *PredictRequest) Prepare(schema *churn.Schema) (churn.RawRecord, error) {
	known := make(map[string]struct{}, schema.Len())
	for _, f := range schema.Features() {
		known[f.Name] = struct{}{}
	}
	for name := range r.fields {
		if _, ok := known[name]; !ok {
			return nil, dErrors.Newf(dErrors.CodeValidation, "unknown field %q", name)
		}
	}

	raw := make(churn.RawRecord, schema.Len())
	for _, f := range schema.Features() {
		v, ok := r.fields[f.Name]
		if !ok || v == nil {
			def, haveDef := schema.Default(f.Name)
			if !haveDef {
				return nil, dErrors.Newf(dErrors.CodeValidation, "%s is required", f.Name)
			}
			raw[f.Name] = def
			continue
		}

		switch f.Kind {
		case churn.KindCategorical:
			label, ok := v.(string)
			if !ok {
				label = fmt.Sprint(v)
			}
			label = strings.TrimSpace(label)
			if !govalidator.IsIn(label, schema.Options(f.Name)...) {
				return nil, dErrors.Newf(dErrors.CodeUnknownCategory, "unknown %s value %q", f.Name, label)
			}
			raw[f.Name] = label
		case churn.KindScaled, churn.KindRaw:
			if s, isStr := v.(string); isStr {
				s = strings.TrimSpace(s)
				if !govalidator.IsFloat(s) && !govalidator.IsInt(s) {
					return nil, dErrors.Newf(dErrors.CodeInvalidNumericInput, "field %s: %q is not numeric", f.Name, s)
				}
				raw[f.Name] = s
				continue
			}
			raw[f.Name] = v
		}
	}
	return raw, nil
}
