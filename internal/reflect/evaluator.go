package reflect

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thinkle/deep/internal/llm"
)

const (
	// MinXP and MaxXP bound the base award before the difficulty
	// multiplier is applied.
	MinXP = 1
	MaxXP = 20

	// MaxFeedbackLen caps the feedback shown in the celebration.
	MaxFeedbackLen = 200
)

// EvaluateInput is everything the scorer sees about one answer.
type EvaluateInput struct {
	Prompt          string
	Theme           string
	Answer          string
	DurationSeconds int
	DayIndex        int
	Streak          int
}

// Evaluation is the scorer's verdict: a short feedback line ending in
// an "Improve:" suggestion, and a base XP award in [MinXP, MaxXP].
type Evaluation struct {
	Feedback string
	XP       int
}

// Evaluator scores a written reflection.
type Evaluator interface {
	Evaluate(ctx context.Context, input EvaluateInput) (*Evaluation, error)
}

// EvaluationSchema defines the JSON schema for LLM evaluation responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A score and short coaching feedback for a written daily reflection",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two warm, specific sentences about the answer, ending with 'Improve:' followed by one concrete suggestion. Under 200 characters total.",
			},
			"xp": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     20,
				"description": "Points from 1 (bare minimum) to 20 (exceptional depth, honesty, and specificity)",
			},
		},
		"required":             []any{"feedback", "xp"},
		"additionalProperties": false,
	},
}

const evaluatorSystemPrompt = `You are a thoughtful reflection coach reviewing one person's daily written reflection.

Rules:
- Score depth, honesty, and specificity. A concrete observed detail beats a generic platitude.
- Never score the writing style or grammar. This is a private journal, not an essay.
- Feedback is one or two warm sentences, then "Improve:" with exactly one concrete suggestion for tomorrow.
- Keep the whole feedback under 200 characters.
- xp ranges 1-20. Reserve 15+ for answers with real self-observation, not just length.
- Do not quote the answer back at length.`

// LLMEvaluator scores answers with an LLM provider.
type LLMEvaluator struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewLLMEvaluator creates an evaluator backed by the given provider.
func NewLLMEvaluator(provider llm.Provider) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, maxTokens: 300, temperature: 0.3}
}

// evaluationOutput is the raw LLM response before clamping.
type evaluationOutput struct {
	Feedback string `json:"feedback"`
	XP       int    `json:"xp"`
}

func (e *LLMEvaluator) Evaluate(ctx context.Context, input EvaluateInput) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")

	req := llm.Request{
		System: evaluatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluationMessage(input)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.maxTokens,
		Temperature: e.temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation response: %w", err)
	}

	return normalizeEvaluation(raw.Feedback, raw.XP), nil
}

func buildEvaluationMessage(input EvaluateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Theme: %s\n", input.Theme)
	fmt.Fprintf(&b, "Prompt: %s\n", input.Prompt)
	fmt.Fprintf(&b, "Day of week cycle: %d of 7\n", input.DayIndex+1)
	fmt.Fprintf(&b, "Time spent writing: %d seconds\n", input.DurationSeconds)
	fmt.Fprintf(&b, "Current streak: %d days\n\n", input.Streak)
	fmt.Fprintf(&b, "Answer:\n%s\n", input.Answer)
	return b.String()
}

// normalizeEvaluation clamps the score and trims the feedback so a
// misbehaving model can't break the celebration screen.
func normalizeEvaluation(feedback string, xp int) *Evaluation {
	if xp < MinXP {
		xp = MinXP
	}
	if xp > MaxXP {
		xp = MaxXP
	}

	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		feedback = "You showed up and wrote something real. Improve: add one concrete detail tomorrow."
	}
	if !strings.Contains(feedback, "Improve:") {
		feedback = strings.TrimRight(feedback, " .") + ". Improve: pick one detail and go one layer deeper."
	}
	feedback = truncate(feedback, MaxFeedbackLen)

	return &Evaluation{Feedback: feedback, XP: xp}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}

// HeuristicEvaluator scores answers without any network dependency.
// It rewards length and first-person specificity with a simple model
// so the app stays fully usable with no API key configured.
type HeuristicEvaluator struct{}

func (HeuristicEvaluator) Evaluate(_ context.Context, input EvaluateInput) (*Evaluation, error) {
	words := len(strings.Fields(input.Answer))

	xp := 2
	switch {
	case words >= 120:
		xp = 12
	case words >= 60:
		xp = 9
	case words >= 25:
		xp = 6
	case words >= 10:
		xp = 4
	}

	lower := strings.ToLower(input.Answer)
	for _, marker := range []string{"i felt", "i noticed", "i realized", "i chose", "because"} {
		if strings.Contains(lower, marker) {
			xp += 2
			break
		}
	}
	if xp > MaxXP {
		xp = MaxXP
	}

	feedback := "You put real words on the page today. Improve: name one feeling behind what you wrote."
	if words < 10 {
		feedback = "A start is a start. Improve: give tomorrow's answer three full sentences."
	} else if words >= 60 {
		feedback = "Strong detail and honest observation. Improve: end with one sentence about what it means."
	}

	return normalizeEvaluation(feedback, xp), nil
}
