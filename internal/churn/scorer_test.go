package churn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "churnsight/pkg/domain-errors"
)

// fixedModel returns a canned probability pair and remembers the rows it saw.
type fixedModel struct {
	probs [2]float64
	err   error
	rows  [][]float64
}

func (m *fixedModel) PredictProba(row []float64) ([2]float64, error) {
	m.rows = append(m.rows, append([]float64(nil), row...))
	if m.err != nil {
		return [2]float64{}, m.err
	}
	return m.probs, nil
}

func scaledBankRecord() ScaledRecord {
	rec := make(ScaledRecord)
	for i, f := range BankSchema().Features() {
		rec[f.Name] = float64(i) / 18
	}
	return rec
}

func TestScorer_Score(t *testing.T) {
	schema := BankSchema()

	t.Run("churn label iff class one wins", func(t *testing.T) {
		model := &fixedModel{probs: [2]float64{0.3, 0.7}}
		scorer, err := NewScorer(schema, model)
		require.NoError(t, err)

		result, err := scorer.Score(scaledBankRecord())
		require.NoError(t, err)
		assert.Equal(t, LabelChurned, result.Label)
		assert.InDelta(t, 0.7, result.ChurnProbability(), 1e-9)
		assert.InDelta(t, 0.3, result.RetentionProbability(), 1e-9)
	})

	t.Run("retained label when class zero wins", func(t *testing.T) {
		model := &fixedModel{probs: [2]float64{0.8, 0.2}}
		scorer, err := NewScorer(schema, model)
		require.NoError(t, err)

		result, err := scorer.Score(scaledBankRecord())
		require.NoError(t, err)
		assert.Equal(t, LabelRetained, result.Label)
	})

	t.Run("vectorizes in schema order", func(t *testing.T) {
		model := &fixedModel{probs: [2]float64{0.5, 0.5}}
		scorer, err := NewScorer(schema, model)
		require.NoError(t, err)

		rec := scaledBankRecord()
		_, err = scorer.Score(rec)
		require.NoError(t, err)

		require.Len(t, model.rows, 1)
		row := model.rows[0]
		require.Len(t, row, schema.Len())
		for i, f := range schema.Features() {
			assert.Equal(t, rec[f.Name], row[i], "position %d should be %s", i, f.Name)
		}
	})

	t.Run("model failure becomes scoring_failed with cause", func(t *testing.T) {
		cause := errors.New("tree 3: split references feature 40 outside row")
		model := &fixedModel{err: cause}
		scorer, err := NewScorer(schema, model)
		require.NoError(t, err)

		_, err = scorer.Score(scaledBankRecord())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeScoringFailed))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("incomplete record is rejected before the model", func(t *testing.T) {
		model := &fixedModel{probs: [2]float64{0.5, 0.5}}
		scorer, err := NewScorer(schema, model)
		require.NoError(t, err)

		rec := scaledBankRecord()
		delete(rec, "age")
		_, err = scorer.Score(rec)
		require.Error(t, err)
		assert.Empty(t, model.rows, "model must not be called for an incomplete record")
	})
}
