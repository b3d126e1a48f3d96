package service

import "encoding/json"

// ResponseInterpreter decides whether a model reply is structured recipe
// data or plain chat text.
type ResponseInterpreter struct{}

func NewResponseInterpreter() *ResponseInterpreter {
	return &ResponseInterpreter{}
}

// Interpret parses raw model output. When a recipe was requested the whole
// text must parse as JSON, otherwise the raw string comes back unchanged
// with isJSON false. The parsed value's shape is not validated.
func (ri *ResponseInterpreter) Interpret(raw string, wantsRecipe bool) (interface{}, bool) {
	if !wantsRecipe {
		return raw, false
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw, false
	}
	return parsed, true
}
