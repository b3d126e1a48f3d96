package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseInterpreter_Interpret(t *testing.T) {
	interpreter := NewResponseInterpreter()

	t.Run("should pass conversational replies through untouched", func(t *testing.T) {
		payload, isJSON := interpreter.Interpret(`{"recipes": []}`, false)

		assert.False(t, isJSON)
		assert.Equal(t, `{"recipes": []}`, payload)
	})

	t.Run("should parse valid recipe JSON", func(t *testing.T) {
		raw := `{"recipes": [{"name": "Lemon Pasta", "difficulty": "Easy"}]}`
		payload, isJSON := interpreter.Interpret(raw, true)

		require.True(t, isJSON)
		parsed, ok := payload.(map[string]interface{})
		require.True(t, ok)
		recipes, ok := parsed["recipes"].([]interface{})
		require.True(t, ok)
		require.Len(t, recipes, 1)
		first := recipes[0].(map[string]interface{})
		assert.Equal(t, "Lemon Pasta", first["name"])
	})

	t.Run("should fall back to raw text when parsing fails", func(t *testing.T) {
		raw := "Sure! Here's a recipe for you: {\"recipes\": ..."
		payload, isJSON := interpreter.Interpret(raw, true)

		assert.False(t, isJSON)
		assert.Equal(t, raw, payload)
	})

	t.Run("should reject trailing garbage after the JSON", func(t *testing.T) {
		raw := `{"recipes": []} hope you like it!`
		payload, isJSON := interpreter.Interpret(raw, true)

		assert.False(t, isJSON)
		assert.Equal(t, raw, payload)
	})

	t.Run("should accept any JSON shape without validating it", func(t *testing.T) {
		payload, isJSON := interpreter.Interpret(`{}`, true)

		assert.True(t, isJSON)
		assert.Equal(t, map[string]interface{}{}, payload)
	})
}
