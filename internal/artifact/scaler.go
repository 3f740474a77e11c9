package artifact

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// MinMaxScaler maps each column to [0, 1] using the minimum and maximum
// observed when the scaler was fitted. Inputs outside the fitted range are
// not rejected; they simply land outside [0, 1], matching the permissive
// contract of the training pipeline.
type MinMaxScaler struct {
	Mins []float64
	Maxs []float64
}

// NewMinMaxScaler builds a fitted scaler from per-column bounds. The offline
// producer uses this after computing bounds over the training set.
func NewMinMaxScaler(mins, maxs []float64) (*MinMaxScaler, error) {
	if len(mins) != len(maxs) {
		return nil, fmt.Errorf("bounds length mismatch: %d mins, %d maxs", len(mins), len(maxs))
	}
	return &MinMaxScaler{Mins: mins, Maxs: maxs}, nil
}

// Columns returns the number of columns the scaler was fitted with.
func (s *MinMaxScaler) Columns() int { return len(s.Mins) }

// Transform scales one row. Column order must match the fit order.
// Degenerate columns (max == min) map to 0.
func (s *MinMaxScaler) Transform(row []float64) ([]float64, error) {
	if len(row) != len(s.Mins) {
		return nil, fmt.Errorf("row has %d columns, scaler fitted with %d", len(row), len(s.Mins))
	}
	out := make([]float64, len(row))
	for j, v := range row {
		if s.Maxs[j] == s.Mins[j] {
			out[j] = 0
			continue
		}
		out[j] = (v - s.Mins[j]) / (s.Maxs[j] - s.Mins[j])
	}
	return out, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using gob.
func (s *MinMaxScaler) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(s.Mins); err != nil {
		return nil, err
	}
	if err := enc.Encode(s.Maxs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using gob.
func (s *MinMaxScaler) UnmarshalBinary(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&s.Mins); err != nil {
		return err
	}
	if err := dec.Decode(&s.Maxs); err != nil {
		return err
	}
	if len(s.Mins) != len(s.Maxs) {
		return fmt.Errorf("bounds length mismatch: %d mins, %d maxs", len(s.Mins), len(s.Maxs))
	}
	return nil
}
