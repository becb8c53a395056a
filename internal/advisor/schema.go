package advisor

import "github.com/abhisek/testlens/internal/llm"

// AdviceSchema constrains the model's answer for one flagged item.
var AdviceSchema = &llm.Schema{
	Name:        "item-advice",
	Description: "Diagnosis and revision suggestions for one flagged test item",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"diagnosis": map[string]any{
				"type":        "string",
				"description": "One or two sentences on the likely cause of the flagged statistics",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    5,
				"items":       map[string]any{"type": "string"},
				"description": "Concrete edits to the stem or the options",
			},
			"rewrite": map[string]any{
				"type":        "string",
				"description": "A revised item stem, or an empty string when the content was not provided",
			},
		},
		"required":             []any{"diagnosis", "suggestions", "rewrite"},
		"additionalProperties": false,
	},
}
