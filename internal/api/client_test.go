package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDailyQuestion(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(DailyQuestion{
			ID:           "week-1-day-3",
			Prompt:       "What slowed you down today?",
			Theme:        "Attention — Noticing",
			DayIndex:     2,
			TimerSeconds: 180,
			XPTotal:      42,
			Streak:       3,
			Difficulty:   DifficultyInfo{Label: "primer", Score: 3, Multiplier: 1.0},
			WeekProgress: WeekProgress{CompletedDays: 2, TotalDays: 7},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	q, err := c.DailyQuestion(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("DailyQuestion: %v", err)
	}
	if gotPath != "/v1/questions/daily" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "userId=user-123" {
		t.Errorf("query = %q", gotQuery)
	}
	if q.ID != "week-1-day-3" || q.TimerSeconds != 180 || q.Streak != 3 {
		t.Errorf("unexpected question: %+v", q)
	}
}

func TestDailyQuestionOmitsEmptyUserID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(DailyQuestion{
			ID:           "week-1-day-1",
			Prompt:       "What mattered today?",
			TimerSeconds: 180,
		})
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).DailyQuestion(context.Background(), ""); err != nil {
		t.Fatalf("DailyQuestion: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("query = %q, want empty", gotQuery)
	}
}

func TestSubmitAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/answers" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var sub AnswerSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			t.Fatalf("decoding submission: %v", err)
		}
		if sub.QuestionID != "week-1-day-3" || sub.DurationSeconds != 95 {
			t.Errorf("unexpected submission: %+v", sub)
		}
		json.NewEncoder(w).Encode(AnswerResult{
			Feedback:  "Nice depth. Improve: name the feeling",
			XPAwarded: 5,
			XPTotal:   47,
			Streak:    4,
			Level:     1,
		})
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).SubmitAnswer(context.Background(), AnswerSubmission{
		QuestionID:      "week-1-day-3",
		Answer:          "I noticed myself rushing through lunch.",
		UserID:          "user-123",
		DurationSeconds: 95,
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.XPAwarded != 5 || res.Streak != 4 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestDailyQuestionDecodesBackendShapes(t *testing.T) {
	// previousFeedback and dopamine arrive as objects (or null), the
	// way the backend serves them.
	body := `{
		"id": "week-2-day-1",
		"prompt": "What pulled your attention today?",
		"timerSeconds": 180,
		"previousFeedback": {
			"feedback": "Good depth. Improve: slow down.",
			"submittedAt": "2026-08-28",
			"questionId": "week-1-day-7"
		},
		"dopamine": {
			"curiosityHook": "Today's question has surprised 73% of people.",
			"curiosityPrompts": ["What did you almost not notice?"],
			"activeDifficulty": "deepening",
			"challengeModes": [{"label": "Depth", "description": "Go one layer further", "multiplier": 1.15, "unlocked": true}],
			"rewardHighlights": [{"title": "Week badge", "description": "3 of 7 days", "earned": false}],
			"anticipationTeaser": "Tomorrow builds on this.",
			"nextPromptAvailableAt": "2026-08-30"
		}
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	q, err := NewClient(srv.URL).DailyQuestion(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("DailyQuestion: %v", err)
	}
	if q.PreviousFeedback == nil || q.PreviousFeedback.Feedback != "Good depth. Improve: slow down." {
		t.Errorf("previousFeedback = %+v", q.PreviousFeedback)
	}
	if q.PreviousFeedback.QuestionID != "week-1-day-7" || q.PreviousFeedback.SubmittedAt != "2026-08-28" {
		t.Errorf("previousFeedback provenance = %+v", q.PreviousFeedback)
	}
	if q.Dopamine == nil || q.Dopamine.CuriosityHook == "" {
		t.Fatalf("dopamine = %+v", q.Dopamine)
	}
	if len(q.Dopamine.ChallengeModes) != 1 || q.Dopamine.ChallengeModes[0].Multiplier != 1.15 {
		t.Errorf("challengeModes = %+v", q.Dopamine.ChallengeModes)
	}
	if len(q.Dopamine.RewardHighlights) != 1 || q.Dopamine.RewardHighlights[0].Earned {
		t.Errorf("rewardHighlights = %+v", q.Dopamine.RewardHighlights)
	}
}

func TestDailyQuestionAcceptsNullFields(t *testing.T) {
	body := `{
		"id": "week-1-day-1",
		"prompt": "What mattered today?",
		"timerSeconds": 180,
		"previousFeedback": null,
		"dopamine": null
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	q, err := NewClient(srv.URL).DailyQuestion(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("DailyQuestion: %v", err)
	}
	if q.PreviousFeedback != nil || q.Dopamine != nil {
		t.Errorf("null fields should decode to nil, got %+v / %+v", q.PreviousFeedback, q.Dopamine)
	}
}

func TestSubmitAnswerAcceptsNullBadgeName(t *testing.T) {
	body := `{"feedback": "Nice depth.", "xpAwarded": 5, "xpTotal": 47, "streak": 4, "badgeName": null}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).SubmitAnswer(context.Background(), AnswerSubmission{QuestionID: "week-1-day-1", Answer: "a"})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.BadgeName != "" {
		t.Errorf("badgeName = %q, want empty", res.BadgeName)
	}
}

func TestDailyQuestionRejectsMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>gateway timeout</html>"},
		{"missing prompt", `{"id":"week-1-day-1","timerSeconds":180}`},
		{"zero timer", `{"id":"week-1-day-1","prompt":"p","timerSeconds":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			if _, err := NewClient(srv.URL).DailyQuestion(context.Background(), "u"); err == nil {
				t.Error("expected error for malformed payload")
			}
		})
	}
}

func TestSubmitAnswerStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"You already answered today's prompt. Come back tomorrow for a new question."}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).SubmitAnswer(context.Background(), AnswerSubmission{QuestionID: "week-1-day-3"})
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type = %T", err)
	}
	if statusErr.StatusCode != http.StatusConflict {
		t.Errorf("status = %d", statusErr.StatusCode)
	}
	want := "You already answered today's prompt. Come back tomorrow for a new question."
	if statusErr.Error() != want {
		t.Errorf("message = %q, want %q", statusErr.Error(), want)
	}
}

func TestFriendlyMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail field", `{"detail":"Answer too short"}`, "Answer too short"},
		{"plain text", "service unavailable", "service unavailable"},
		{"empty body", "", GenericSubmitError},
		{"whitespace body", "  \n ", GenericSubmitError},
		{"json without detail", `{"error":"nope"}`, `{"error":"nope"}`},
		{"empty detail", `{"detail":"  "}`, `{"detail":"  "}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FriendlyMessage(tt.body); got != tt.want {
				t.Errorf("FriendlyMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}
