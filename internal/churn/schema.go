// Package churn holds the scoring domain: the feature schema, the
// raw-to-scaled transform pipeline, and the scorer that calls the loaded
// classifier. Every step is table driven: fixed lookup tables, a fixed
// column order, one scaler call, one model call.
package churn

import (
	"fmt"
)

// Kind classifies how a feature is prepared before scoring.
type Kind string

const (
	// KindScaled features are numeric and pass through the fitted scaler.
	KindScaled Kind = "scaled"
	// KindCategorical features are closed-set labels encoded to integers.
	KindCategorical Kind = "categorical"
	// KindRaw features pass through numerically unchanged.
	KindRaw Kind = "raw"
)

// Feature is one named schema entry.
type Feature struct {
	Name string
	Kind Kind
}

// Encodings maps a categorical feature name to its label-to-code table.
// Tables are closed: a label outside the table is an unknown_category error,
// never a silent default.
type Encodings map[string]map[string]int

// Schema is the ordered feature list the model and scaler were fitted with.
// Order is load-bearing: the scaled subset must be fed to the scaler in
// exactly this order.
type Schema struct {
	features  []Feature
	encodings Encodings
	defaults  map[string]any
}

// NewSchema builds and validates a schema. Names must be unique and every
// categorical feature must have an encoding table.
func NewSchema(features []Feature, encodings Encodings, defaults map[string]any) (*Schema, error) {
	seen := make(map[string]struct{}, len(features))
	for _, f := range features {
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("duplicate feature %q", f.Name)
		}
		seen[f.Name] = struct{}{}
		switch f.Kind {
		case KindScaled, KindCategorical, KindRaw:
		default:
			return nil, fmt.Errorf("feature %q has unknown kind %q", f.Name, f.Kind)
		}
		if f.Kind == KindCategorical {
			if len(encodings[f.Name]) == 0 {
				return nil, fmt.Errorf("categorical feature %q has no encoding table", f.Name)
			}
		}
	}
	return &Schema{features: features, encodings: encodings, defaults: defaults}, nil
}

// Features returns the ordered feature list.
func (s *Schema) Features() []Feature { return s.features }

// Len returns the number of features.
func (s *Schema) Len() int { return len(s.features) }

// ScaledNames returns the names of scaled features in schema order. This is
// the column order the scaler was fitted with.
func (s *Schema) ScaledNames() []string {
	var names []string
	for _, f := range s.features {
		if f.Kind == KindScaled {
			names = append(names, f.Name)
		}
	}
	return names
}

// Encoding returns the label table for a categorical feature.
func (s *Schema) Encoding(name string) (map[string]int, bool) {
	table, ok := s.encodings[name]
	return table, ok
}

// Options returns the allowed labels for a categorical feature. Order is
// unspecified; callers sort for display.
func (s *Schema) Options(name string) []string {
	table := s.encodings[name]
	opts := make([]string, 0, len(table))
	for label := range table {
		opts = append(opts, label)
	}
	return opts
}

// Default returns the default value for a feature, used when a form field is
// left empty.
func (s *Schema) Default(name string) (any, bool) {
	v, ok := s.defaults[name]
	return v, ok
}
