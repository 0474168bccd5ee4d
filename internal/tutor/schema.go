package tutor

import "github.com/prefrontal-labs/mindly-app/internal/llm"

// classifySchema constrains the classifier's generative fallback to one of
// the three labels the rules cannot distinguish.
var classifySchema = &llm.Schema{
	Name:        "message-type",
	Description: "Classification of a student chat message",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type": "string",
				"enum": []any{"answer", "question", "general"},
			},
		},
		"required":             []any{"type"},
		"additionalProperties": false,
	},
}

// assessSchema is the rubric verdict returned by the answer assessor.
var assessSchema = &llm.Schema{
	Name:        "answer-assessment",
	Description: "Rubric-scored evaluation of a student answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 3,
			},
			"isCorrect": map[string]any{
				"type": "boolean",
			},
			"misconception": map[string]any{
				"type":        []any{"string", "null"},
				"description": "Named misconception behind the error, or null",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One sentence on what was right or wrong",
			},
		},
		"required":             []any{"score", "isCorrect", "misconception", "feedback"},
		"additionalProperties": false,
	},
}

// extractSchema pulls the posed question and tested concept out of a tutor
// reply so the next turn knows what answer to expect.
var extractSchema = &llm.Schema{
	Name:        "question-extraction",
	Description: "The question asked and concept tested in a tutor response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        []any{"string", "null"},
				"description": "Exact question text, or null if none",
			},
			"concept": map[string]any{
				"type":        []any{"string", "null"},
				"description": "Topic or concept name being tested, or null",
			},
		},
		"required":             []any{"question", "concept"},
		"additionalProperties": false,
	},
}
