package service

import "strings"

// recipeTriggers flip a chat message into a recipe request. Substring
// match; "cook" also fires on "cookie".
var recipeTriggers = []string{"recipe", "cook", "ingredients", "dish", "meal", "food", "bake", "grill"}

// IntentDetector decides whether a message is asking for a recipe.
type IntentDetector struct{}

func NewIntentDetector() *IntentDetector {
	return &IntentDetector{}
}

// IsRecipeRequest reports whether the message contains a recipe trigger
// word. No stemming and no negation handling; "I don't want a recipe"
// still counts as a recipe request.
func (d *IntentDetector) IsRecipeRequest(message string) bool {
	msg := strings.ToLower(message)
	for _, trigger := range recipeTriggers {
		if strings.Contains(msg, trigger) {
			return true
		}
	}
	return false
}
