package content

import "github.com/abhisek/wisdomquest/internal/llm"

// LevelSchema defines the JSON schema for a level's lesson and quiz.
var LevelSchema = &llm.Schema{
	Name:        "level-lesson",
	Description: "An adventure-style lesson followed by multiple-choice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lessonTitle": map[string]any{
				"type":        "string",
				"description": "RPG-flavoured level title, every Chinese character annotated",
			},
			"lessonText": map[string]any{
				"type":        "string",
				"description": "The lesson as dialogue from the mascot",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":   map[string]any{"type": "string"},
									"text": map[string]any{"type": "string"},
								},
								"required":             []any{"id", "text"},
								"additionalProperties": false,
							},
						},
						"correctOptionId": map[string]any{"type": "string"},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right, in the mascot's voice",
						},
					},
					"required":             []any{"question", "options", "correctOptionId", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"lessonTitle", "lessonText", "questions"},
		"additionalProperties": false,
	},
}
