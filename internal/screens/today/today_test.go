package today

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thinkle/deep/internal/api"
	"github.com/thinkle/deep/internal/screen"
	sess "github.com/thinkle/deep/internal/session"
)

// mockGateway implements api.Gateway for testing.
type mockGateway struct {
	question    *api.DailyQuestion
	questionErr error
	result      *api.AnswerResult
	submitErr   error
	submissions []api.AnswerSubmission
}

func (m *mockGateway) DailyQuestion(_ context.Context, _ string) (*api.DailyQuestion, error) {
	if m.questionErr != nil {
		return nil, m.questionErr
	}
	return m.question, nil
}

func (m *mockGateway) SubmitAnswer(_ context.Context, sub api.AnswerSubmission) (*api.AnswerResult, error) {
	m.submissions = append(m.submissions, sub)
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return m.result, nil
}

// mockTracker implements PrimingTracker for testing.
type mockTracker struct {
	seen   bool
	marked int
}

func (m *mockTracker) PrimingSeen(_ context.Context, _ string) (bool, error) {
	return m.seen, nil
}

func (m *mockTracker) MarkPrimingSeen(_ context.Context, _ string) error {
	m.marked++
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testQuestion() *api.DailyQuestion {
	return &api.DailyQuestion{
		ID:           "week-1-day-3",
		Prompt:       "What pulled your attention away today?",
		Theme:        "Attention — Noticing",
		WeekIndex:    0,
		DayIndex:     2,
		TimerSeconds: 180,
		XPTotal:      130,
		Streak:       2,
		Difficulty:   api.DifficultyInfo{Label: "primer", Score: 3, Multiplier: 1.0},
		WeekProgress: api.WeekProgress{CompletedDays: 2, TotalDays: 7},
	}
}

func testResult() *api.AnswerResult {
	return &api.AnswerResult{
		Feedback:             "Honest and specific. Improve: name the feeling behind it.",
		XPAwarded:            8,
		BaseXP:               8,
		XPTotal:              138,
		Streak:               3,
		WeekCompletedDays:    3,
		WeekTotalDays:        7,
		Level:                2,
		XPIntoLevel:          18,
		XPToNextLevel:        102,
		LevelProgressPercent: 15,
	}
}

func loadedScreen(t *testing.T, gw *mockGateway, tracker *mockTracker) *TodayScreen {
	t.Helper()
	var pt PrimingTracker
	if tracker != nil {
		pt = tracker
	}
	s := New(gw, pt, "user-1")

	msg := s.loadQuestion()()
	loaded, ok := msg.(questionLoadedMsg)
	if !ok {
		t.Fatalf("loadQuestion returned %T", msg)
	}
	if loaded.Err != nil {
		t.Fatalf("load question: %v", loaded.Err)
	}

	scr, _ := s.Update(loaded)
	return scr.(*TodayScreen)
}

func TestTodayScreen_Title(t *testing.T) {
	s := New(&mockGateway{}, nil, "user-1")
	if s.Title() != "Today" {
		t.Errorf("Title = %q, want %q", s.Title(), "Today")
	}
}

func TestTodayScreen_View_Loading(t *testing.T) {
	s := New(&mockGateway{}, nil, "user-1")
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestTodayScreen_LoadEmitsProgress(t *testing.T) {
	gw := &mockGateway{question: testQuestion()}
	s := New(gw, nil, "user-1")

	msg := s.loadQuestion()()
	scr, cmd := s.Update(msg)
	s = scr.(*TodayScreen)

	if s.state.Phase != sess.PhaseReady {
		t.Errorf("phase = %v, want ready", s.state.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a progress command after load")
	}
	prog, ok := cmd().(screen.ProgressChangedMsg)
	if !ok {
		t.Fatalf("expected ProgressChangedMsg, got %T", cmd())
	}
	if prog.Level != 2 || prog.Streak != 2 {
		t.Errorf("progress = %+v, want level 2 streak 2", prog)
	}
}

func TestTodayScreen_LoadFailureRetry(t *testing.T) {
	gw := &mockGateway{questionErr: errors.New("backend unavailable")}
	s := New(gw, nil, "user-1")

	msg := s.loadQuestion()()
	scr, _ := s.Update(msg)
	s = scr.(*TodayScreen)

	if s.state.ErrorMessage == "" {
		t.Fatal("expected error message after failed load")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}

	// R retries with a working backend.
	gw.questionErr = nil
	gw.question = testQuestion()
	scr, cmd := s.Update(keyPress('r'))
	s = scr.(*TodayScreen)
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	scr, _ = s.Update(cmd())
	s = scr.(*TodayScreen)
	if s.state.Phase != sess.PhaseReady {
		t.Errorf("phase after retry = %v, want ready", s.state.Phase)
	}
}

func TestTodayScreen_PrimingFlow(t *testing.T) {
	q := testQuestion()
	q.Priming = &api.PrimingContent{
		EmotionalHook:  "Your attention went somewhere today.",
		TeaserQuestion: "Where did it go?",
		SomaticCue:     "Take one slow breath.",
		CognitiveCue:   "Think of one moment of drift.",
	}
	tracker := &mockTracker{}
	s := loadedScreen(t, &mockGateway{question: q}, tracker)

	if !s.state.ShowPriming {
		t.Fatal("expected priming panel")
	}
	if s.state.PrimingMode != sess.PrimingIntro {
		t.Error("first visit should use intro framing")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty priming view")
	}

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TodayScreen)
	if s.state.ShowPriming {
		t.Error("expected priming to be dismissed")
	}
	if cmd == nil {
		t.Fatal("expected a mark-seen command")
	}
	cmd()
	if tracker.marked != 1 {
		t.Errorf("marked = %d, want 1", tracker.marked)
	}
}

func TestTodayScreen_PrimingReminderOnRevisit(t *testing.T) {
	q := testQuestion()
	q.Priming = &api.PrimingContent{EmotionalHook: "Hook.", TeaserQuestion: "Teaser?"}
	s := loadedScreen(t, &mockGateway{question: q}, &mockTracker{seen: true})

	if s.state.PrimingMode != sess.PrimingReminder {
		t.Error("revisit should use reminder framing")
	}
}

func TestTodayScreen_StartSubmitCelebrate(t *testing.T) {
	gw := &mockGateway{question: testQuestion(), result: testResult()}
	s := loadedScreen(t, gw, nil)

	base := time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC)
	now := base
	s.clock = func() time.Time { return now }

	// Enter opens the answer window.
	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TodayScreen)
	if s.state.Phase != sess.PhaseAnswering {
		t.Fatalf("phase = %v, want answering", s.state.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a tick command after start")
	}

	// Write and submit 42 seconds in.
	s.input.Model.SetValue("I kept reaching for my phone during dinner.")
	now = base.Add(42 * time.Second)
	scr, cmd = s.Update(ctrlKey('d'))
	s = scr.(*TodayScreen)
	if s.state.Phase != sess.PhaseSubmitting {
		t.Fatalf("phase = %v, want submitting", s.state.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	scr, progCmd := s.Update(cmd())
	s = scr.(*TodayScreen)
	if s.state.Phase != sess.PhaseCelebrating {
		t.Fatalf("phase = %v, want celebrating", s.state.Phase)
	}
	if !s.state.Locked {
		t.Error("expected day to be locked after submission")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty celebration view")
	}

	if len(gw.submissions) != 1 {
		t.Fatalf("submissions = %d, want 1", len(gw.submissions))
	}
	sub := gw.submissions[0]
	if sub.QuestionID != "week-1-day-3" || sub.UserID != "user-1" {
		t.Errorf("submission = %+v", sub)
	}
	if sub.DurationSeconds != 42 {
		t.Errorf("duration = %d, want 42", sub.DurationSeconds)
	}

	if progCmd == nil {
		t.Fatal("expected a progress command after verdict")
	}
	prog, ok := progCmd().(screen.ProgressChangedMsg)
	if !ok || prog.Streak != 3 {
		t.Errorf("progress = %+v, want streak 3", prog)
	}

	// Enter closes celebration into the locked summary.
	scr, _ = s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TodayScreen)
	if s.state.Phase != sess.PhaseReady || !s.state.Locked {
		t.Errorf("after dismiss: phase %v locked %v", s.state.Phase, s.state.Locked)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty locked summary")
	}
}

func TestTodayScreen_EmptyAnswerRejectedLocally(t *testing.T) {
	gw := &mockGateway{question: testQuestion(), result: testResult()}
	s := loadedScreen(t, gw, nil)

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TodayScreen)

	s.input.Model.SetValue("   ")
	scr, _ = s.Update(ctrlKey('d'))
	s = scr.(*TodayScreen)

	if s.state.Phase != sess.PhaseAnswering {
		t.Errorf("phase = %v, want answering", s.state.Phase)
	}
	if s.state.ErrorMessage == "" {
		t.Error("expected a validation message")
	}
	if len(gw.submissions) != 0 {
		t.Errorf("submissions = %d, want 0", len(gw.submissions))
	}
}

func TestTodayScreen_SubmitFailureKeepsText(t *testing.T) {
	gw := &mockGateway{question: testQuestion(), submitErr: errors.New("scorer offline")}
	s := loadedScreen(t, gw, nil)

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TodayScreen)

	s.input.Model.SetValue("A thought worth keeping.")
	scr, cmd := s.Update(ctrlKey('d'))
	s = scr.(*TodayScreen)
	scr, _ = s.Update(cmd())
	s = scr.(*TodayScreen)

	if s.state.Phase != sess.PhaseAnswering {
		t.Errorf("phase = %v, want answering for retry", s.state.Phase)
	}
	if s.state.ErrorMessage != "scorer offline" {
		t.Errorf("error = %q", s.state.ErrorMessage)
	}
	if s.input.Value() != "A thought worth keeping." {
		t.Error("expected the draft to survive a failed submit")
	}
}

func TestTodayScreen_AlreadyAnswered(t *testing.T) {
	q := testQuestion()
	q.HasAnsweredToday = true
	q.Priming = &api.PrimingContent{EmotionalHook: "Hook."}
	q.PreviousFeedback = &api.PreviousFeedback{
		Feedback:    "Good depth. Improve: slow down.",
		SubmittedAt: "2026-08-28",
		QuestionID:  "week-1-day-2",
	}
	s := loadedScreen(t, &mockGateway{question: q}, nil)

	if !s.state.Locked {
		t.Fatal("expected locked state")
	}
	if s.state.ShowPriming {
		t.Error("priming should not show on a locked day")
	}

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TodayScreen)
	if s.state.Phase != sess.PhaseReady {
		t.Errorf("phase = %v, want ready", s.state.Phase)
	}
	if s.state.ErrorMessage != sess.AlreadyAnsweredMessage {
		t.Errorf("error = %q", s.state.ErrorMessage)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty locked view")
	}
}

func TestTodayScreen_TimerTick(t *testing.T) {
	s := loadedScreen(t, &mockGateway{question: testQuestion()}, nil)

	base := time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC)
	s.clock = func() time.Time { return base }

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TodayScreen)

	scr, cmd := s.Update(timerTickMsg(base.Add(30 * time.Second)))
	s = scr.(*TodayScreen)
	if s.state.SecondsLeft != 150 {
		t.Errorf("seconds left = %d, want 150", s.state.SecondsLeft)
	}
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}

	// Expiry floors at zero and keeps the window open.
	scr, _ = s.Update(timerTickMsg(base.Add(500 * time.Second)))
	s = scr.(*TodayScreen)
	if s.state.SecondsLeft != 0 {
		t.Errorf("seconds left = %d, want 0", s.state.SecondsLeft)
	}
	if s.state.Phase != sess.PhaseAnswering {
		t.Errorf("phase = %v, want answering after expiry", s.state.Phase)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view at zero")
	}
}

func TestTodayScreen_KeyHints(t *testing.T) {
	s := loadedScreen(t, &mockGateway{question: testQuestion()}, nil)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*TodayScreen)
	hints := s.KeyHints()
	if len(hints) == 0 || hints[0].Key != "Ctrl+D" {
		t.Errorf("answering hints = %+v", hints)
	}
}
