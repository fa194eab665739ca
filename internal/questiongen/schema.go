package questiongen

import "github.com/abhisek/acumen/internal/llm"

// QuestionSchema is the JSON schema for LLM question responses.
var QuestionSchema = &llm.Schema{
	Name:        "assessment-question",
	Description: "A multiple-choice knowledge-assessment question with answer key and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "Clear, self-contained question text testing the intended knowledge",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "4-5 answer options with exactly one correct answer; distractors reflect common misconceptions",
			},
			"correct_answer_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "0-based index of the correct option",
			},
			"knowledge_tag": map[string]any{
				"type":        "string",
				"description": "Short label for the specific sub-skill being tested",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is right and the distractors are wrong",
			},
			"difficulty_level": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     100,
				"description": "Difficulty of this question on the 1-100 scale",
			},
			"estimated_time": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Seconds a knowledgeable person would need to answer",
			},
		},
		"required":             []any{"question", "options", "correct_answer_index", "knowledge_tag", "explanation", "difficulty_level", "estimated_time"},
		"additionalProperties": false,
	},
}
