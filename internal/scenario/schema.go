package scenario

import "skillcompass/internal/llm"

// scenarioSchema constrains scenario generation to the fields the bank
// needs for a playable question.
var scenarioSchema = &llm.Schema{
	Name:        "scenario-question",
	Description: "An open-ended workplace scenario question probing one target skill.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The question posed to the user, second person, one or two sentences.",
			},
			"scenarioContext": map[string]any{
				"type":        "string",
				"description": "A short concrete workplace situation framing the question.",
			},
			"suggestedApproaches": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Two to four reasonable ways a person might handle the situation.",
			},
			"skillIndicators": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"description": "Skill id to keywords whose presence in an answer suggests that skill.",
			},
		},
		"required":             []any{"prompt", "scenarioContext"},
		"additionalProperties": false,
	},
}

// analysisSchema constrains free-text answer analysis to skill tuples
// the aggregator can merge.
var analysisSchema = &llm.Schema{
	Name:        "answer-analysis",
	Description: "Skills evidenced by a free-text answer to a scenario question.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"identifiedSkills": map[string]any{
				"type":        "array",
				"items":       skillTupleSchema,
				"description": "Skills the answer directly demonstrates.",
			},
			"additionalSkills": map[string]any{
				"type":        "array",
				"items":       skillTupleSchema,
				"description": "Skills plausibly inferred but not directly demonstrated.",
			},
			"overallAssessment": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"identifiedSkills"},
		"additionalProperties": false,
	},
}

var skillTupleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"skill": map[string]any{
			"type":        "string",
			"description": "Skill name or id, e.g. \"active listening\" or \"active-listening\".",
		},
		"confidence": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 100,
		},
		"reasoning": map[string]any{
			"type": "string",
		},
	},
	"required":             []any{"skill", "confidence"},
	"additionalProperties": false,
}

// occupationSchema constrains occupation suggestion to a short list of
// plain titles.
var occupationSchema = &llm.Schema{
	Name:        "occupation-suggestions",
	Description: "Occupations matching a set of identified skills.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"occupations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    8,
				"description": "Occupation titles, most relevant first.",
			},
		},
		"required":             []any{"occupations"},
		"additionalProperties": false,
	},
}
