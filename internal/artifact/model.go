package artifact

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"math"
)

// TreeEnsemble is a gradient-boosted binary classifier: the raw score is the
// base score plus the sum of one leaf value per tree, and the churn
// probability is the sigmoid of that score. The trees are fitted offline;
// at serving time the ensemble is read-only.
type TreeEnsemble struct {
	BaseScore float64
	Trees     []Tree
	Features  int // width of the feature vector the ensemble was fitted with
}

// Tree is a single regression tree stored as a flat node array. Index 0 is
// the root; Left/Right index into Nodes.
type Tree struct {
	Nodes []Node
}

// Node is either a split (Leaf false: go left when x[Feature] <= Threshold)
// or a leaf contributing Value to the raw score.
type Node struct {
	Leaf      bool
	Feature   int
	Threshold float64
	Value     float64
	Left      int
	Right     int
}

// NewTreeEnsemble builds an ensemble from fitted trees. The offline producer
// uses this; serving code only loads.
func NewTreeEnsemble(baseScore float64, features int, trees ...Tree) (*TreeEnsemble, error) {
	if features <= 0 {
		return nil, errors.New("ensemble needs a positive feature count")
	}
	return &TreeEnsemble{BaseScore: baseScore, Features: features, Trees: trees}, nil
}

// PredictProba returns [p_retain, p_churn] for one feature vector. The two
// probabilities always sum to 1.
func (e *TreeEnsemble) PredictProba(row []float64) ([2]float64, error) {
	score, err := e.rawScore(row)
	if err != nil {
		return [2]float64{}, err
	}
	pChurn := sigmoid(score)
	return [2]float64{1 - pChurn, pChurn}, nil
}

// Predict returns the class index (1 = churn). The label is taken from the
// same probability vector PredictProba produces, so the two can never
// disagree.
func (e *TreeEnsemble) Predict(row []float64) (int, error) {
	p, err := e.PredictProba(row)
	if err != nil {
		return 0, err
	}
	if p[1] >= p[0] {
		return 1, nil
	}
	return 0, nil
}

func (e *TreeEnsemble) rawScore(row []float64) (float64, error) {
	if len(row) != e.Features {
		return 0, fmt.Errorf("row has %d features, ensemble fitted with %d", len(row), e.Features)
	}
	score := e.BaseScore
	for ti := range e.Trees {
		leaf, err := e.Trees[ti].walk(row)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", ti, err)
		}
		score += leaf
	}
	return score, nil
}

func (t *Tree) walk(row []float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, errors.New("empty tree")
	}
	i := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		n := t.Nodes[i]
		if n.Leaf {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(row) {
			return 0, fmt.Errorf("split references feature %d outside row", n.Feature)
		}
		if row[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
		if i < 0 || i >= len(t.Nodes) {
			return 0, fmt.Errorf("child index %d outside node array", i)
		}
	}
	return 0, errors.New("cycle in tree nodes")
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// MarshalBinary implements encoding.BinaryMarshaler using gob.
func (e *TreeEnsemble) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(e.BaseScore); err != nil {
		return nil, err
	}
	if err := enc.Encode(e.Features); err != nil {
		return nil, err
	}
	if err := enc.Encode(e.Trees); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using gob.
func (e *TreeEnsemble) UnmarshalBinary(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&e.BaseScore); err != nil {
		return err
	}
	if err := dec.Decode(&e.Features); err != nil {
		return err
	}
	if err := dec.Decode(&e.Trees); err != nil {
		return err
	}
	return nil
}
