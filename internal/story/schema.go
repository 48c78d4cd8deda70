package story

import "github.com/mkrishnan/storyfox/internal/llm"

// StorySchema defines the JSON schema for LLM story generation responses.
var StorySchema = &llm.Schema{
	Name:        "reading-story",
	Description: "A short children's story with embedded comprehension questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short, fun story title",
			},
			"segments": map[string]any{
				"type":        "array",
				"description": "The story content in reading order: prose segments interleaved with questions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"text", "question"},
							"description": "Segment kind",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "Prose for a text segment, 2-4 sentences. Empty for questions.",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question shown to the reader. Empty for text segments.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "3-4 answer options for a question. Empty for text segments.",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
						"skill": map[string]any{
							"type":        "string",
							"enum":        []any{"comprehension", "vocabulary", "inference", "summarization"},
							"description": "The reading skill this question exercises",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Question difficulty relative to the requested level",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A short, encouraging explanation of the correct answer",
						},
					},
					"required":             []any{"type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "segments"},
		"additionalProperties": false,
	},
}
