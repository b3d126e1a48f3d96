package service

import (
	"strings"
	"unicode"

	"github.com/mealmuse/recipechat/backend/internal/types"
)

const systemRoleDescription = `You are a helpful and creative recipe builder who can also chat casually.
If the user asks about recipes or ingredients, respond with a valid JSON recipe using the schema below.
Otherwise, respond conversationally in plain text.

`

const adaptiveHeader = "Based on user feedback, adjust your style accordingly:\n"

const recipeInstruction = `
Now generate a recipe in valid JSON format using this schema:
{
  "recipes": [
    {
      "name": "Recipe Name",
      "ingredients": ["list", "of", "ingredients"],
      "instructions": ["step", "by", "step", "instructions"],
      "cookingTime": "estimated time",
      "difficulty": "Easy | Medium | Hard",
      "nutrition": {
        "calories": 450,
        "protein": "12g",
        "carbs": "60g"
      },
      "otherInfo": {"optional": "any extra notes"}
    }
  ]
}`

const conversationalInstruction = "\nRespond conversationally in natural language, not JSON."

// PromptComposer assembles the full prompt sent to the model: role
// description, adaptive tuning block, serialized conversation, and the
// output-format instruction.
type PromptComposer struct {
	systemRole string
}

func NewPromptComposer() *PromptComposer {
	return &PromptComposer{systemRole: systemRoleDescription}
}

// Compose builds the prompt for one chat turn. History is serialized in
// order as "<Role>: <text>" lines followed by the current user message;
// nothing is ever truncated here.
func (c *PromptComposer) Compose(directives []string, history []types.ChatMessage, message string, wantsRecipe bool) string {
	bullets := make([]string, len(directives))
	for i, d := range directives {
		bullets[i] = "- " + d
	}

	var b strings.Builder
	b.WriteString("System: ")
	b.WriteString(c.systemRole)
	b.WriteString(adaptiveHeader)
	b.WriteString(strings.Join(bullets, "\n"))
	b.WriteString("\n\n\n")
	for _, m := range history {
		b.WriteString(capitalizeRole(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Text)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(message)
	b.WriteString("\n")
	if wantsRecipe {
		b.WriteString(recipeInstruction)
	} else {
		b.WriteString(conversationalInstruction)
	}
	return b.String()
}

// capitalizeRole uppercases the first rune and lowercases the rest, so
// "assistant" and "USER" render as "Assistant" and "User".
func capitalizeRole(role string) string {
	if role == "" {
		return role
	}
	r := []rune(role)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}
