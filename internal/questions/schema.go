package questions

// ConvertedSchema is the JSON schema of a converted question file: an
// array of records with a numeric id, lettered options and a
// correct_answer that is a string or null.
var ConvertedSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type": "integer",
			},
			"question": map[string]any{
				"type": "string",
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "string", "pattern": "^[a-z]$"},
						"text": map[string]any{"type": "string"},
					},
					"required": []any{"id", "text"},
				},
			},
			"correct_answer": map[string]any{
				"type": []any{"string", "null"},
			},
		},
		"required": []any{"id", "question", "options", "correct_answer"},
	},
}
