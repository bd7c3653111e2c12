package reflect

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/thinkle/deep/internal/llm"
)

func TestLLMEvaluator(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"feedback":"Honest and specific. Improve: name the feeling behind it.","xp":9}`),
	})
	e := NewLLMEvaluator(mock)

	eval, err := e.Evaluate(context.Background(), EvaluateInput{
		Prompt:   "What slowed you down today?",
		Theme:    "Attention — Noticing",
		Answer:   "I noticed myself rushing through lunch because I was anxious about a meeting.",
		DayIndex: 2,
		Streak:   3,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if eval.XP != 9 {
		t.Errorf("xp = %d, want 9", eval.XP)
	}
	if !strings.Contains(eval.Feedback, "Improve:") {
		t.Errorf("feedback missing suggestion: %q", eval.Feedback)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != EvaluationSchema {
		t.Error("request did not carry the evaluation schema")
	}
	if !strings.Contains(req.Messages[0].Content, "rushing through lunch") {
		t.Error("answer missing from prompt")
	}
	if !strings.Contains(req.Messages[0].Content, "Attention — Noticing") {
		t.Error("theme missing from prompt")
	}
}

func TestLLMEvaluatorProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields provider unavailable
	if _, err := NewLLMEvaluator(mock).Evaluate(context.Background(), EvaluateInput{Answer: "x"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNormalizeEvaluation(t *testing.T) {
	tests := []struct {
		name         string
		feedback     string
		xp           int
		wantXP       int
		wantContains string
	}{
		{"clamps low", "Good. Improve: more.", 0, 1, "Improve:"},
		{"clamps high", "Good. Improve: more.", 99, 20, "Improve:"},
		{"in range", "Good. Improve: more.", 7, 7, "Improve:"},
		{"adds missing suggestion", "Nice work today.", 5, 5, "Improve: pick one detail"},
		{"empty feedback gets default", "", 5, 5, "Improve:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := normalizeEvaluation(tt.feedback, tt.xp)
			if eval.XP != tt.wantXP {
				t.Errorf("xp = %d, want %d", eval.XP, tt.wantXP)
			}
			if !strings.Contains(eval.Feedback, tt.wantContains) {
				t.Errorf("feedback = %q, want it to contain %q", eval.Feedback, tt.wantContains)
			}
		})
	}
}

func TestNormalizeEvaluationTruncates(t *testing.T) {
	long := strings.Repeat("very long feedback ", 30) + "Improve: shorten."
	eval := normalizeEvaluation(long, 10)
	if n := len([]rune(eval.Feedback)); n > MaxFeedbackLen {
		t.Errorf("feedback length = %d, want <= %d", n, MaxFeedbackLen)
	}
}

func TestHeuristicEvaluator(t *testing.T) {
	e := HeuristicEvaluator{}
	ctx := context.Background()

	short, err := e.Evaluate(ctx, EvaluateInput{Answer: "Fine I guess."})
	if err != nil {
		t.Fatalf("evaluate short: %v", err)
	}
	long, err := e.Evaluate(ctx, EvaluateInput{
		Answer: strings.Repeat("I noticed something meaningful about my day and how it felt. ", 12),
	})
	if err != nil {
		t.Fatalf("evaluate long: %v", err)
	}

	if short.XP >= long.XP {
		t.Errorf("short answer (%d xp) should score below long answer (%d xp)", short.XP, long.XP)
	}
	for _, eval := range []*Evaluation{short, long} {
		if eval.XP < MinXP || eval.XP > MaxXP {
			t.Errorf("xp %d out of range", eval.XP)
		}
		if !strings.Contains(eval.Feedback, "Improve:") {
			t.Errorf("feedback missing suggestion: %q", eval.Feedback)
		}
	}
}
