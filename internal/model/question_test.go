package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, Question{ID: "age", Field: FieldOwnerAge}.Numeric())
	assert.False(t, Question{ID: "size", Options: []Option{{Label: "Klein", Code: "small"}}}.Numeric())
}

func TestFilterByStep(t *testing.T) {
	t.Parallel()

	questions := []Question{
		{ID: "a", Step: 1},
		{ID: "b", Step: 2},
		{ID: "c", Step: 1},
	}

	t.Run("step 1", func(t *testing.T) {
		t.Parallel()
		result := FilterByStep(questions, 1)
		assert.Len(t, result, 2)
		assert.Equal(t, "a", result[0].ID)
		assert.Equal(t, "c", result[1].ID)
	})

	t.Run("unknown step", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, FilterByStep(questions, 3))
	})
}
