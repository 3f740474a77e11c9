package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnsight/internal/churn"
	dErrors "churnsight/pkg/domain-errors"
)

func decodePredictRequest(t *testing.T, body string) *PredictRequest {
	t.Helper()
	var req PredictRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestPredictRequest_Validate(t *testing.T) {
	t.Run("null body rejected", func(t *testing.T) {
		req := decodePredictRequest(t, `null`)
		assert.Error(t, req.Validate())
	})

	t.Run("object accepted", func(t *testing.T) {
		req := decodePredictRequest(t, `{}`)
		assert.NoError(t, req.Validate())
	})
}

func TestPredictRequest_Prepare(t *testing.T) {
	schema := churn.BankSchema()

	t.Run("absent fields take schema defaults", func(t *testing.T) {
		req := decodePredictRequest(t, `{}`)
		raw, err := req.Prepare(schema)
		require.NoError(t, err)

		assert.Equal(t, "Male", raw["gender"])
		assert.Equal(t, "salaried", raw["occupation"])
		assert.Equal(t, 60.0, raw["vintage"])
		assert.Len(t, raw, schema.Len())
	})

	t.Run("explicit values override defaults", func(t *testing.T) {
		req := decodePredictRequest(t, `{"gender":"Female","age":52}`)
		raw, err := req.Prepare(schema)
		require.NoError(t, err)

		assert.Equal(t, "Female", raw["gender"])
		assert.Equal(t, 52.0, raw["age"])
	})

	t.Run("categorical labels are trimmed", func(t *testing.T) {
		req := decodePredictRequest(t, `{"occupation":" salaried "}`)
		raw, err := req.Prepare(schema)
		require.NoError(t, err)
		assert.Equal(t, "salaried", raw["occupation"])
	})

	t.Run("numeric category labels are accepted as numbers", func(t *testing.T) {
		// The city codes look like numbers, so clients send them as numbers.
		req := decodePredictRequest(t, `{"city":1020,"customer_nw_category":2}`)
		raw, err := req.Prepare(schema)
		require.NoError(t, err)
		assert.Equal(t, "1020", raw["city"])
		assert.Equal(t, "2", raw["customer_nw_category"])
	})

	t.Run("label outside the closed set", func(t *testing.T) {
		req := decodePredictRequest(t, `{"occupation":"astronaut"}`)
		_, err := req.Prepare(schema)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnknownCategory))
	})

	t.Run("non-numeric scaled field", func(t *testing.T) {
		req := decodePredictRequest(t, `{"age":"abc"}`)
		_, err := req.Prepare(schema)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidNumericInput))
	})

	t.Run("numeric string scaled field passes through", func(t *testing.T) {
		req := decodePredictRequest(t, `{"age":"41"}`)
		raw, err := req.Prepare(schema)
		require.NoError(t, err)
		assert.Equal(t, "41", raw["age"])
	})

	t.Run("unknown field name rejected", func(t *testing.T) {
		req := decodePredictRequest(t, `{"agee":41}`)
		_, err := req.Prepare(schema)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("null field falls back to default", func(t *testing.T) {
		req := decodePredictRequest(t, `{"age":null}`)
		raw, err := req.Prepare(schema)
		require.NoError(t, err)
		assert.Equal(t, 35.0, raw["age"])
	})
}
