package reflect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thinkle/deep/internal/api"
	"github.com/thinkle/deep/internal/progression"
	"github.com/thinkle/deep/internal/store"
)

// fixedEvaluator returns the same verdict for every answer.
type fixedEvaluator struct {
	eval Evaluation
	err  error
}

func (f fixedEvaluator) Evaluate(_ context.Context, _ EvaluateInput) (*Evaluation, error) {
	if f.err != nil {
		return nil, f.err
	}
	e := f.eval
	return &e, nil
}

func newTestService(t *testing.T, now time.Time, eval Evaluator) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	if eval == nil {
		eval = fixedEvaluator{eval: Evaluation{Feedback: "Nice depth. Improve: name the feeling.", XP: 10}}
	}
	svc := NewService(bank, st, eval, WithClock(func() time.Time { return now }))
	return svc, st
}

var testDay = time.Date(2026, 8, 29, 8, 30, 0, 0, time.UTC)

func TestDailyQuestionFreshUser(t *testing.T) {
	svc, _ := newTestService(t, testDay, nil)
	ctx := context.Background()

	q, err := svc.DailyQuestion(ctx, "user-1")
	if err != nil {
		t.Fatalf("daily question: %v", err)
	}
	if q.Prompt == "" || q.Theme == "" {
		t.Fatalf("incomplete question: %+v", q)
	}
	if q.XPTotal != 0 || q.Streak != 0 {
		t.Errorf("fresh user totals = %d xp / %d streak, want zeros", q.XPTotal, q.Streak)
	}
	if q.HasAnsweredToday {
		t.Error("fresh user cannot have answered today")
	}
	if q.TimerSeconds != DefaultTimerSeconds {
		t.Errorf("timer = %d, want %d", q.TimerSeconds, DefaultTimerSeconds)
	}
	if q.WeekProgress.TotalDays != progression.WeekDays {
		t.Errorf("week total = %d, want %d", q.WeekProgress.TotalDays, progression.WeekDays)
	}
	if q.AvailableOn != "2026-08-29" {
		t.Errorf("availableOn = %q", q.AvailableOn)
	}
	if q.Dopamine == nil || q.Dopamine.CuriosityHook == "" {
		t.Error("missing dopamine hook")
	}
	if q.PreviousFeedback != nil {
		t.Errorf("fresh user previousFeedback = %+v, want nil", q.PreviousFeedback)
	}
	wantDiff := progression.DifficultyForDay(q.DayIndex)
	if q.Difficulty.Label != wantDiff.Label || q.Difficulty.Multiplier != wantDiff.Multiplier {
		t.Errorf("difficulty = %+v, want %+v", q.Difficulty, wantDiff)
	}
}

func TestSubmitAnswerHappyPath(t *testing.T) {
	svc, st := newTestService(t, testDay, nil)
	ctx := context.Background()

	q, err := svc.DailyQuestion(ctx, "user-1")
	if err != nil {
		t.Fatalf("daily question: %v", err)
	}

	res, err := svc.SubmitAnswer(ctx, api.AnswerSubmission{
		QuestionID:      q.ID,
		Answer:          "I noticed myself rushing through lunch because of a meeting.",
		UserID:          "user-1",
		DurationSeconds: 95,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	wantBase := progression.ApplyDifficulty(10, q.Difficulty.Multiplier)
	if res.BaseXP != wantBase {
		t.Errorf("baseXp = %d, want %d", res.BaseXP, wantBase)
	}
	if res.XPAwarded != wantBase+res.BonusXP {
		t.Errorf("xpAwarded = %d, want base %d + bonus %d", res.XPAwarded, wantBase, res.BonusXP)
	}
	if res.Streak != 1 {
		t.Errorf("streak = %d, want 1", res.Streak)
	}
	if res.WeekCompletedDays != 1 {
		t.Errorf("week completed = %d, want 1", res.WeekCompletedDays)
	}
	stats := progression.ComputeLevelStats(res.XPTotal)
	if res.Level != stats.Level || res.XPIntoLevel != stats.XPIntoLevel {
		t.Errorf("level stats mismatch: %+v", res)
	}

	// Progress persisted.
	prog, err := st.ProgressRepo().Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if prog.XPTotal != res.XPTotal || prog.LastAnsweredOn != "2026-08-29" {
		t.Errorf("progress not persisted: %+v", prog)
	}

	// Journal row appended.
	n, err := st.JournalRepo().CountReflections(ctx, "user-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("journal rows = %d, want 1", n)
	}

	// Snapshot taken.
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	if snap == nil || snap.Data.Progress == nil || snap.Data.Progress.XPTotal != res.XPTotal {
		t.Errorf("snapshot missing or stale: %+v", snap)
	}

	// The daily question now reports the locked state.
	q2, err := svc.DailyQuestion(ctx, "user-1")
	if err != nil {
		t.Fatalf("daily question: %v", err)
	}
	if !q2.HasAnsweredToday {
		t.Error("hasAnsweredToday should be true after submitting")
	}
	if q2.PreviousFeedback == nil {
		t.Fatal("previousFeedback missing after submitting")
	}
	if q2.PreviousFeedback.Feedback != res.Feedback {
		t.Errorf("previousFeedback = %q, want %q", q2.PreviousFeedback.Feedback, res.Feedback)
	}
	if q2.PreviousFeedback.QuestionID != q.ID || q2.PreviousFeedback.SubmittedAt != "2026-08-29" {
		t.Errorf("previousFeedback provenance = %+v", q2.PreviousFeedback)
	}
	if q2.Dopamine == nil || q2.Dopamine.NextPromptAvailableAt != "2026-08-30" {
		t.Errorf("dopamine after answering = %+v, want next prompt date", q2.Dopamine)
	}
}

func TestSubmitAnswerDuplicateDay(t *testing.T) {
	svc, st := newTestService(t, testDay, nil)
	ctx := context.Background()

	q, _ := svc.DailyQuestion(ctx, "user-1")
	sub := api.AnswerSubmission{QuestionID: q.ID, Answer: "first answer", UserID: "user-1"}
	if _, err := svc.SubmitAnswer(ctx, sub); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	_, err := svc.SubmitAnswer(ctx, sub)
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("err = %v, want ErrAlreadyAnswered", err)
	}

	n, _ := st.JournalRepo().CountReflections(ctx, "user-1")
	if n != 1 {
		t.Errorf("journal rows = %d, want 1 after rejected duplicate", n)
	}
}

func TestSubmitAnswerDuplicateSurvivesProgressReset(t *testing.T) {
	svc, st := newTestService(t, testDay, nil)
	ctx := context.Background()

	q, _ := svc.DailyQuestion(ctx, "user-1")
	sub := api.AnswerSubmission{QuestionID: q.ID, Answer: "first answer", UserID: "user-1"}
	if _, err := svc.SubmitAnswer(ctx, sub); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// Clearing progress keeps the journal, so the day stays answered.
	if err := st.ProgressRepo().Delete(ctx, "user-1"); err != nil {
		t.Fatalf("reset progress: %v", err)
	}

	if _, err := svc.SubmitAnswer(ctx, sub); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("err = %v, want ErrAlreadyAnswered after reset", err)
	}

	q2, err := svc.DailyQuestion(ctx, "user-1")
	if err != nil {
		t.Fatalf("daily question: %v", err)
	}
	if !q2.HasAnsweredToday {
		t.Error("hasAnsweredToday should survive a progress reset")
	}
}

func TestSubmitAnswerValidation(t *testing.T) {
	svc, _ := newTestService(t, testDay, nil)
	ctx := context.Background()
	q, _ := svc.DailyQuestion(ctx, "user-1")

	if _, err := svc.SubmitAnswer(ctx, api.AnswerSubmission{QuestionID: q.ID, Answer: "   ", UserID: "user-1"}); !errors.Is(err, ErrEmptyAnswer) {
		t.Errorf("empty answer err = %v, want ErrEmptyAnswer", err)
	}
	if _, err := svc.SubmitAnswer(ctx, api.AnswerSubmission{QuestionID: "week-9-day-9", Answer: "hello", UserID: "user-1"}); !errors.Is(err, ErrWrongQuestion) {
		t.Errorf("stale question err = %v, want ErrWrongQuestion", err)
	}
}

func TestSubmitAnswerEvaluatorFailure(t *testing.T) {
	svc, st := newTestService(t, testDay, fixedEvaluator{err: errors.New("model offline")})
	ctx := context.Background()
	q, _ := svc.DailyQuestion(ctx, "user-1")

	if _, err := svc.SubmitAnswer(ctx, api.AnswerSubmission{QuestionID: q.ID, Answer: "hello there", UserID: "user-1"}); err == nil {
		t.Fatal("expected error")
	}

	// Nothing recorded on failure; the user can retry.
	prog, _ := st.ProgressRepo().Get(ctx, "user-1")
	if prog.LastAnsweredOn != "" {
		t.Errorf("progress touched on failed evaluation: %+v", prog)
	}
}

func TestStreakContinuation(t *testing.T) {
	svc, st := newTestService(t, testDay, nil)
	ctx := context.Background()

	seed := &store.ProgressState{
		UserID:         "user-1",
		XPTotal:        40,
		Streak:         3,
		LastAnsweredOn: "2026-08-28", // yesterday
	}
	if err := st.ProgressRepo().Save(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	q, _ := svc.DailyQuestion(ctx, "user-1")
	if q.Streak != 3 {
		t.Errorf("display streak = %d, want 3 while still alive", q.Streak)
	}

	res, err := svc.SubmitAnswer(ctx, api.AnswerSubmission{QuestionID: q.ID, Answer: "continuing the habit", UserID: "user-1"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Streak != 4 {
		t.Errorf("streak = %d, want 4", res.Streak)
	}
}

func TestStreakReset(t *testing.T) {
	svc, st := newTestService(t, testDay, nil)
	ctx := context.Background()

	seed := &store.ProgressState{
		UserID:         "user-1",
		Streak:         9,
		LastAnsweredOn: "2026-08-25", // gap of several days
	}
	if err := st.ProgressRepo().Save(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	q, _ := svc.DailyQuestion(ctx, "user-1")
	if q.Streak != 0 {
		t.Errorf("display streak = %d, want 0 for a broken streak", q.Streak)
	}

	res, err := svc.SubmitAnswer(ctx, api.AnswerSubmission{QuestionID: q.ID, Answer: "starting again", UserID: "user-1"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Streak != 1 {
		t.Errorf("streak = %d, want 1 after reset", res.Streak)
	}
}

func TestWeekCompletionBonus(t *testing.T) {
	svc, st := newTestService(t, testDay, nil)
	ctx := context.Background()

	q, _ := svc.DailyQuestion(ctx, "user-1")
	seed := &store.ProgressState{
		UserID:         "user-1",
		XPTotal:        100,
		Streak:         6,
		LastAnsweredOn: "2026-08-28",
		WeekIndex:      q.WeekIndex,
		CompletedDays:  progression.WeekDays - 1,
	}
	if err := st.ProgressRepo().Save(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := svc.SubmitAnswer(ctx, api.AnswerSubmission{QuestionID: q.ID, Answer: "finishing the week", UserID: "user-1"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.BonusXP != progression.WeekCompletionBonusXP {
		t.Errorf("bonus = %d, want %d", res.BonusXP, progression.WeekCompletionBonusXP)
	}
	if !res.WeekBadgeEarned {
		t.Error("badge should be earned on day seven")
	}
	if res.WeekCompletedDays != progression.WeekDays {
		t.Errorf("completed = %d, want %d", res.WeekCompletedDays, progression.WeekDays)
	}
	want := progression.BadgeName(q.Theme, false, "")
	if res.BadgeName != want {
		t.Errorf("badge name = %q, want %q", res.BadgeName, want)
	}
	if res.XPTotal != 100+res.XPAwarded {
		t.Errorf("xpTotal = %d, want seed plus award", res.XPTotal)
	}
}

func TestWeekRolloverResetsProgress(t *testing.T) {
	svc, st := newTestService(t, testDay, nil)
	ctx := context.Background()

	q, _ := svc.DailyQuestion(ctx, "user-1")
	seed := &store.ProgressState{
		UserID:        "user-1",
		WeekIndex:     q.WeekIndex + 1, // stored progress from a different week cycle
		CompletedDays: 5,
		BadgeEarned:   true,
	}
	if err := st.ProgressRepo().Save(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	q2, err := svc.DailyQuestion(ctx, "user-1")
	if err != nil {
		t.Fatalf("daily question: %v", err)
	}
	if q2.WeekProgress.CompletedDays != 0 || q2.WeekProgress.BadgeEarned {
		t.Errorf("week standing not reset: %+v", q2.WeekProgress)
	}
}

func TestPrimingSeen(t *testing.T) {
	svc, _ := newTestService(t, testDay, nil)
	ctx := context.Background()

	seen, err := svc.PrimingSeen(ctx, "user-1")
	if err != nil {
		t.Fatalf("priming seen: %v", err)
	}
	if seen {
		t.Error("priming cannot be seen before first view")
	}

	if err := svc.MarkPrimingSeen(ctx, "user-1"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	seen, _ = svc.PrimingSeen(ctx, "user-1")
	if !seen {
		t.Error("priming should be seen after marking")
	}
}

func TestPrimingSeenIsDurableAcrossDays(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	bank, err := LoadBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	now := testDay
	eval := fixedEvaluator{eval: Evaluation{Feedback: "Nice depth.", XP: 10}}
	svc := NewService(bank, st, eval, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	if err := svc.MarkPrimingSeen(ctx, "user-1"); err != nil {
		t.Fatalf("mark: %v", err)
	}

	// The intro never comes back: the next day still reads as seen.
	now = testDay.AddDate(0, 0, 1)
	seen, err := svc.PrimingSeen(ctx, "user-1")
	if err != nil {
		t.Fatalf("priming seen: %v", err)
	}
	if !seen {
		t.Error("priming seen flag should persist into the next day")
	}

	// Re-marking keeps the first-seen date.
	if err := svc.MarkPrimingSeen(ctx, "user-1"); err != nil {
		t.Fatalf("re-mark: %v", err)
	}
	prog, err := st.ProgressRepo().Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if prog.PrimingSeenOn != "2026-08-29" {
		t.Errorf("primingSeenOn = %q, want first-seen date", prog.PrimingSeenOn)
	}
}
