package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Response payloads are validated before decoding so a malformed server
// reply surfaces as a gateway error instead of half-populated state.

const dailyQuestionSchema = `{
	"type": "object",
	"required": ["id", "prompt", "timerSeconds"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"prompt": {"type": "string", "minLength": 1},
		"theme": {"type": "string"},
		"weekIndex": {"type": "integer", "minimum": 0},
		"dayIndex": {"type": "integer", "minimum": 0},
		"availableOn": {"type": "string"},
		"timerSeconds": {"type": "integer", "minimum": 1},
		"xpTotal": {"type": "integer", "minimum": 0},
		"streak": {"type": "integer", "minimum": 0},
		"previousFeedback": {
			"type": ["object", "null"],
			"properties": {
				"feedback": {"type": "string"},
				"submittedAt": {"type": "string"},
				"questionId": {"type": "string"}
			}
		},
		"priming": {
			"type": ["object", "null"],
			"properties": {
				"emotionalHook": {"type": "string"},
				"teaserQuestion": {"type": "string"},
				"somaticCue": {"type": "string"},
				"cognitiveCue": {"type": "string"}
			}
		},
		"difficulty": {
			"type": "object",
			"properties": {
				"label": {"type": "string"},
				"score": {"type": "integer"},
				"multiplier": {"type": "number"}
			}
		},
		"weekProgress": {
			"type": "object",
			"properties": {
				"completedDays": {"type": "integer", "minimum": 0},
				"totalDays": {"type": "integer", "minimum": 0},
				"badgeEarned": {"type": "boolean"}
			}
		},
		"hasAnsweredToday": {"type": "boolean"},
		"dopamine": {
			"type": ["object", "null"],
			"properties": {
				"curiosityHook": {"type": "string"},
				"curiosityPrompts": {"type": "array", "items": {"type": "string"}},
				"activeDifficulty": {"type": "string"},
				"challengeModes": {"type": "array", "items": {"type": "object"}},
				"rewardHighlights": {"type": "array", "items": {"type": "object"}},
				"anticipationTeaser": {"type": "string"},
				"nextPromptAvailableAt": {"type": "string"}
			}
		}
	}
}`

const answerResultSchema = `{
	"type": "object",
	"required": ["feedback", "xpAwarded", "xpTotal", "streak"],
	"properties": {
		"feedback": {"type": "string"},
		"xpAwarded": {"type": "integer", "minimum": 0},
		"baseXp": {"type": "integer", "minimum": 0},
		"bonusXp": {"type": "integer", "minimum": 0},
		"xpTotal": {"type": "integer", "minimum": 0},
		"streak": {"type": "integer", "minimum": 0},
		"evaluatedAt": {"type": "string"},
		"difficultyLevel": {"type": "string"},
		"difficultyMultiplier": {"type": "number"},
		"weekCompletedDays": {"type": "integer", "minimum": 0},
		"weekTotalDays": {"type": "integer", "minimum": 0},
		"weekBadgeEarned": {"type": "boolean"},
		"badgeName": {"type": ["string", "null"]},
		"level": {"type": "integer", "minimum": 1},
		"xpToNextLevel": {"type": "integer", "minimum": 0},
		"nextLevelThreshold": {"type": "integer", "minimum": 0},
		"xpIntoLevel": {"type": "integer", "minimum": 0},
		"levelProgressPercent": {"type": "integer", "minimum": 0, "maximum": 100}
	}
}`

var responseSchemas sync.Map // map[string]*jsonschema.Schema

func validatePayload(name, definition string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON in %s response: %w", name, err)
	}

	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return fmt.Errorf("compile %s schema: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("unexpected %s response shape: %w", name, err)
	}
	return nil
}

func compiledSchema(name, definition string) (*jsonschema.Schema, error) {
	if cached, ok := responseSchemas.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(definition), &parsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	responseSchemas.Store(name, compiled)
	return compiled, nil
}
