package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct code", func(t *testing.T) {
		err := New(CodeUnknownCategory, "unknown city")
		assert.True(t, HasCode(err, CodeUnknownCategory))
		assert.False(t, HasCode(err, CodeInternal))
	})

	t.Run("matches code deeper in the chain", func(t *testing.T) {
		inner := New(CodeScoringFailed, "model prediction failed")
		outer := fmt.Errorf("predict: %w", inner)
		assert.True(t, HasCode(outer, CodeScoringFailed))
	})

	t.Run("wrap preserves the cause", func(t *testing.T) {
		cause := errors.New("row has 3 features, ensemble fitted with 18")
		err := Wrap(cause, CodeScoringFailed, "model prediction failed")
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "scoring_failed")
		assert.Contains(t, err.Error(), cause.Error())
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInvalidNumericInput, CodeOf(New(CodeInvalidNumericInput, "age")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("uncoded")))

	wrapped := Wrap(New(CodeUnknownCategory, "inner"), CodeValidation, "outer")
	assert.Equal(t, CodeValidation, CodeOf(wrapped), "outermost code wins")
}

func TestIs(t *testing.T) {
	err := New(CodeArtifactMissing, "artifact file model.bin not found")
	assert.True(t, Is(err, CodeArtifactMissing))
	assert.False(t, Is(err, CodeNotFound))
}
