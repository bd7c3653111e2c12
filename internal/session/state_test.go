package session

import (
	"testing"
	"time"

	"github.com/thinkle/deep/internal/api"
)

func sampleQuestion() *api.DailyQuestion {
	return &api.DailyQuestion{
		ID:           "week-1-day-3",
		Prompt:       "What slowed you down today?",
		Theme:        "Attention — Noticing",
		DayIndex:     2,
		TimerSeconds: 180,
		XPTotal:      42,
		Streak:       3,
		Difficulty:   api.DifficultyInfo{Label: "primer", Score: 3, Multiplier: 1.0},
		WeekProgress: api.WeekProgress{CompletedDays: 2, TotalDays: 7},
	}
}

func TestLoadQuestionResetsFlow(t *testing.T) {
	s := New("user-1")
	s.ErrorMessage = "stale"
	s.Result = &api.AnswerResult{}
	s.Locked = true

	s.LoadQuestion(sampleQuestion(), false)

	if s.Phase != PhaseReady {
		t.Errorf("phase = %v, want ready", s.Phase)
	}
	if s.Locked {
		t.Error("locked should reset for an unanswered question")
	}
	if s.Result != nil || s.ErrorMessage != "" {
		t.Errorf("stale result/error survived load: %+v %q", s.Result, s.ErrorMessage)
	}
	if s.SecondsLeft != 180 {
		t.Errorf("SecondsLeft = %d, want 180", s.SecondsLeft)
	}
}

func TestLoadQuestionAlreadyAnswered(t *testing.T) {
	q := sampleQuestion()
	q.HasAnsweredToday = true
	q.Priming = &api.PrimingContent{EmotionalHook: "hook"}

	s := New("user-1")
	s.LoadQuestion(q, false)

	if !s.Locked {
		t.Error("expected locked session")
	}
	if s.ShowPriming {
		t.Error("priming must not show on a locked day")
	}
}

func TestPrimingModes(t *testing.T) {
	q := sampleQuestion()
	q.Priming = &api.PrimingContent{EmotionalHook: "hook"}

	s := New("user-1")
	s.LoadQuestion(q, false)
	if !s.ShowPriming || s.PrimingMode != PrimingIntro {
		t.Errorf("first view: show=%v mode=%v, want intro panel", s.ShowPriming, s.PrimingMode)
	}

	s.LoadQuestion(q, true)
	if !s.ShowPriming || s.PrimingMode != PrimingReminder {
		t.Errorf("second view: show=%v mode=%v, want reminder panel", s.ShowPriming, s.PrimingMode)
	}

	q2 := sampleQuestion()
	s.LoadQuestion(q2, false)
	if s.ShowPriming {
		t.Error("no priming content, nothing to show")
	}
}

func TestStartLockedSession(t *testing.T) {
	q := sampleQuestion()
	q.HasAnsweredToday = true

	s := New("user-1")
	s.LoadQuestion(q, false)
	s.Start(time.Now())

	if s.Phase != PhaseReady {
		t.Errorf("phase = %v, want ready", s.Phase)
	}
	if s.ErrorMessage != AlreadyAnsweredMessage {
		t.Errorf("error = %q, want already-answered message", s.ErrorMessage)
	}
}

func TestStartTwiceIsNoop(t *testing.T) {
	s := New("user-1")
	s.LoadQuestion(sampleQuestion(), false)

	t0 := time.Now()
	s.Start(t0)
	s.Start(t0.Add(30 * time.Second))

	s.Tick(t0.Add(10 * time.Second))
	if s.SecondsLeft != 170 {
		t.Errorf("SecondsLeft = %d, want 170 (second Start must not reset the clock)", s.SecondsLeft)
	}
}

func TestTickWallClock(t *testing.T) {
	s := New("user-1")
	s.LoadQuestion(sampleQuestion(), false)

	t0 := time.Now()
	s.Start(t0)

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 180},
		{1 * time.Second, 179},
		{90 * time.Second, 90},
		{179*time.Second + 600*time.Millisecond, 0}, // rounds to 180 elapsed
		{180 * time.Second, 0},
		{500 * time.Second, 0}, // suspended terminal, floors at zero
	}
	for _, tt := range tests {
		s.Tick(t0.Add(tt.elapsed))
		if s.SecondsLeft != tt.want {
			t.Errorf("Tick after %v: SecondsLeft = %d, want %d", tt.elapsed, s.SecondsLeft, tt.want)
		}
	}
}

func TestSubmitAfterTimerExpiry(t *testing.T) {
	s := New("user-1")
	s.LoadQuestion(sampleQuestion(), false)

	t0 := time.Now()
	s.Start(t0)
	s.Tick(t0.Add(10 * time.Minute))

	if s.SecondsLeft != 0 {
		t.Fatalf("SecondsLeft = %d, want 0", s.SecondsLeft)
	}
	sub := s.BeginSubmission("late but finished", t0.Add(10*time.Minute))
	if sub == nil {
		t.Fatal("expired timer must not block submission")
	}
	if sub.DurationSeconds != 180 {
		t.Errorf("DurationSeconds = %d, want clamped to 180", sub.DurationSeconds)
	}
}

func TestBeginSubmission(t *testing.T) {
	s := New("user-1")
	s.LoadQuestion(sampleQuestion(), false)

	t0 := time.Now()
	s.Start(t0)
	sub := s.BeginSubmission("I noticed myself rushing.", t0.Add(95*time.Second))

	if sub == nil {
		t.Fatal("expected a submission")
	}
	if sub.QuestionID != "week-1-day-3" || sub.UserID != "user-1" {
		t.Errorf("unexpected payload: %+v", sub)
	}
	if sub.DurationSeconds != 95 {
		t.Errorf("DurationSeconds = %d, want 95", sub.DurationSeconds)
	}
	if s.Phase != PhaseSubmitting {
		t.Errorf("phase = %v, want submitting", s.Phase)
	}
}

func TestDoubleSubmitIsNoop(t *testing.T) {
	s := New("user-1")
	s.LoadQuestion(sampleQuestion(), false)

	t0 := time.Now()
	s.Start(t0)
	if sub := s.BeginSubmission("first", t0.Add(time.Second)); sub == nil {
		t.Fatal("first submission should go through")
	}
	if sub := s.BeginSubmission("second", t0.Add(2*time.Second)); sub != nil {
		t.Error("second submission while one is in flight must be a no-op")
	}
}

func TestApplySubmissionLocks(t *testing.T) {
	s := New("user-1")
	s.LoadQuestion(sampleQuestion(), false)

	t0 := time.Now()
	s.Start(t0)
	s.BeginSubmission("done", t0.Add(time.Second))

	result := &api.AnswerResult{Feedback: "Nice depth.", XPAwarded: 5, XPTotal: 47, Level: 1}
	s.ApplySubmission(result)

	if s.Phase != PhaseCelebrating {
		t.Errorf("phase = %v, want celebrating", s.Phase)
	}
	if !s.Locked {
		t.Error("successful submission must lock the day")
	}
	if s.Result != result {
		t.Error("result not recorded")
	}

	s.DismissCelebration()
	if s.Phase != PhaseReady || !s.Locked || s.Result == nil {
		t.Errorf("after dismiss: phase=%v locked=%v result=%v", s.Phase, s.Locked, s.Result)
	}
	s.Start(time.Now())
	if s.ErrorMessage != AlreadyAnsweredMessage {
		t.Error("restart after completion must be rejected")
	}
}

func TestFailSubmissionAllowsRetry(t *testing.T) {
	s := New("user-1")
	s.LoadQuestion(sampleQuestion(), false)

	t0 := time.Now()
	s.Start(t0)
	s.BeginSubmission("short", t0.Add(time.Second))
	s.FailSubmission("Answer too short")

	if s.Phase != PhaseAnswering {
		t.Errorf("phase = %v, want answering", s.Phase)
	}
	if s.ErrorMessage != "Answer too short" {
		t.Errorf("error = %q", s.ErrorMessage)
	}
	if s.Locked {
		t.Error("failed submission must not lock the day")
	}
	if sub := s.BeginSubmission("a longer retry answer", t0.Add(10*time.Second)); sub == nil {
		t.Error("retry after failure should be possible")
	}
}

func TestFailSubmissionGenericMessage(t *testing.T) {
	s := New("user-1")
	s.LoadQuestion(sampleQuestion(), false)

	t0 := time.Now()
	s.Start(t0)
	s.BeginSubmission("x", t0.Add(time.Second))
	s.FailSubmission("")

	if s.ErrorMessage != api.GenericSubmitError {
		t.Errorf("error = %q, want generic fallback", s.ErrorMessage)
	}
}

func TestSwitchUserResetsEverything(t *testing.T) {
	s := New("user-1")
	s.LoadQuestion(sampleQuestion(), false)
	t0 := time.Now()
	s.Start(t0)
	s.BeginSubmission("answer", t0.Add(time.Second))
	s.ApplySubmission(&api.AnswerResult{XPTotal: 47})

	s.SwitchUser("user-2")

	if s.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", s.Phase)
	}
	if s.UserID != "user-2" {
		t.Errorf("user = %q", s.UserID)
	}
	if s.Question != nil || s.Result != nil || s.Locked {
		t.Error("per-user state leaked across identity switch")
	}
}

func TestFailLoadKeepsRetryPossible(t *testing.T) {
	s := New("user-1")
	s.FailLoad("backend unreachable")

	if s.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", s.Phase)
	}
	if s.ErrorMessage != "backend unreachable" {
		t.Errorf("error = %q", s.ErrorMessage)
	}

	s.LoadQuestion(sampleQuestion(), false)
	if s.Phase != PhaseReady || s.ErrorMessage != "" {
		t.Error("retry load should clear the failure")
	}
}
