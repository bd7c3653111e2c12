package reflect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thinkle/deep/internal/api"
	"github.com/thinkle/deep/internal/progression"
	"github.com/thinkle/deep/internal/store"
)

const dayLayout = "2006-01-02"

// snapshotKeep bounds how many progress snapshots are retained.
const snapshotKeep = 30

// Errors surfaced to the user verbatim. The session flow shows
// err.Error() in the answer window, matching how the HTTP client
// surfaces backend detail messages.
var (
	ErrAlreadyAnswered = errors.New("You already answered today's prompt. Come back tomorrow for a new question.")
	ErrEmptyAnswer     = errors.New("Answer cannot be empty. Write at least one sentence.")
	ErrWrongQuestion   = errors.New("That question is no longer today's prompt. Reload and try again.")
)

// Service is the offline reflection backend. It satisfies api.Gateway.
type Service struct {
	bank      *Bank
	progress  store.ProgressRepo
	journal   store.JournalRepo
	snapshots store.SnapshotRepo
	evaluator Evaluator

	// now is the clock, swappable in tests.
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService wires the offline backend together. evaluator may be a
// HeuristicEvaluator when no LLM provider is configured.
func NewService(bank *Bank, st *store.Store, evaluator Evaluator, opts ...Option) *Service {
	s := &Service{
		bank:      bank,
		progress:  st.ProgressRepo(),
		journal:   st.JournalRepo(),
		snapshots: st.SnapshotRepo(),
		evaluator: evaluator,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DailyQuestion serves today's prompt with the user's current totals.
func (s *Service) DailyQuestion(ctx context.Context, userID string) (*api.DailyQuestion, error) {
	today := s.now()
	day := today.Format(dayLayout)
	q := s.bank.QuestionFor(today)

	prog, err := s.progress.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	hasAnswered, err := s.journal.HasAnsweredOn(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("checking today's entries: %w", err)
	}
	diff := progression.DifficultyForDay(q.DayIndex)

	completed, badgeEarned := weekStanding(prog, q.WeekIndex)

	return &api.DailyQuestion{
		ID:               q.ID,
		Prompt:           q.Prompt,
		Theme:            q.Theme,
		WeekIndex:        q.WeekIndex,
		DayIndex:         q.DayIndex,
		AvailableOn:      day,
		TimerSeconds:     q.TimerSeconds,
		XPTotal:          prog.XPTotal,
		Streak:           displayStreak(prog, today),
		PreviousFeedback: s.previousFeedback(ctx, userID, prog),
		Priming:          q.Priming,
		Difficulty: api.DifficultyInfo{
			Label:      diff.Label,
			Score:      diff.Score,
			Multiplier: diff.Multiplier,
		},
		WeekProgress: api.WeekProgress{
			CompletedDays: completed,
			TotalDays:     progression.WeekDays,
			BadgeEarned:   badgeEarned,
		},
		HasAnsweredToday: hasAnswered,
		Dopamine:         s.dopamine(today, displayStreak(prog, today), hasAnswered),
	}, nil
}

// previousFeedback assembles the last verdict, preferring the journal
// for the submission date and question id.
func (s *Service) previousFeedback(ctx context.Context, userID string, prog *store.ProgressState) *api.PreviousFeedback {
	if prog.LastFeedback == "" {
		return nil
	}
	prev := &api.PreviousFeedback{
		Feedback:    prog.LastFeedback,
		SubmittedAt: prog.LastAnsweredOn,
	}
	if entries, err := s.journal.ListReflections(ctx, userID, store.QueryOpts{Limit: 1}); err == nil && len(entries) > 0 {
		prev.SubmittedAt = entries[0].Day
		prev.QuestionID = entries[0].QuestionID
	}
	return prev
}

// dopamine builds the variable-reward material for today's question.
func (s *Service) dopamine(today time.Time, streak int, hasAnswered bool) *api.DopamineContent {
	d := &api.DopamineContent{
		CuriosityHook: dopamineFor(today.YearDay(), streak),
	}
	if hasAnswered {
		d.AnticipationTeaser = "Tomorrow's prompt picks up where you left off."
		d.NextPromptAvailableAt = today.AddDate(0, 0, 1).Format(dayLayout)
	}
	return d
}

// SubmitAnswer scores the answer and folds it into the user's progress.
func (s *Service) SubmitAnswer(ctx context.Context, sub api.AnswerSubmission) (*api.AnswerResult, error) {
	if strings.TrimSpace(sub.Answer) == "" {
		return nil, ErrEmptyAnswer
	}

	today := s.now()
	day := today.Format(dayLayout)
	q := s.bank.QuestionFor(today)
	if sub.QuestionID != q.ID {
		return nil, ErrWrongQuestion
	}

	// The journal is the authority here: it survives a progress reset,
	// so a cleared streak never reopens an answered day.
	answered, err := s.journal.HasAnsweredOn(ctx, sub.UserID, day)
	if err != nil {
		return nil, fmt.Errorf("checking today's entries: %w", err)
	}
	if answered {
		return nil, ErrAlreadyAnswered
	}

	prog, err := s.progress.Get(ctx, sub.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	diff := progression.DifficultyForDay(q.DayIndex)
	streak := nextStreak(prog, today)

	eval, err := s.evaluator.Evaluate(ctx, EvaluateInput{
		Prompt:          q.Prompt,
		Theme:           q.Theme,
		Answer:          sub.Answer,
		DurationSeconds: sub.DurationSeconds,
		DayIndex:        q.DayIndex,
		Streak:          streak,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating answer: %w", err)
	}

	baseXP := eval.XP
	awarded := progression.ApplyDifficulty(baseXP, diff.Multiplier)

	completed, badgeEarned := weekStanding(prog, q.WeekIndex)
	if completed < progression.WeekDays {
		completed++
	}

	bonusXP := 0
	badgeName := prog.BadgeName
	if completed >= progression.WeekDays && !badgeEarned {
		bonusXP = progression.WeekCompletionBonusXP
		badgeEarned = true
		badgeName = progression.BadgeName(q.Theme, false, "")
	}

	prog.XPTotal += awarded + bonusXP
	prog.Streak = streak
	prog.LastAnsweredOn = day
	prog.WeekIndex = q.WeekIndex
	prog.CompletedDays = completed
	prog.BadgeEarned = badgeEarned
	prog.BadgeName = badgeName
	prog.LastFeedback = eval.Feedback

	if err := s.progress.Save(ctx, prog); err != nil {
		return nil, fmt.Errorf("saving progress: %w", err)
	}

	if err := s.journal.AppendReflection(ctx, store.ReflectionEventData{
		UserID:          sub.UserID,
		QuestionID:      q.ID,
		Day:             day,
		Theme:           q.Theme,
		Prompt:          q.Prompt,
		Answer:          sub.Answer,
		DurationSeconds: sub.DurationSeconds,
		Feedback:        eval.Feedback,
		XPAwarded:       awarded + bonusXP,
		BaseXP:          awarded,
		BonusXP:         bonusXP,
		Streak:          streak,
		Difficulty:      diff.Label,
		Multiplier:      diff.Multiplier,
	}); err != nil {
		return nil, fmt.Errorf("recording reflection: %w", err)
	}

	s.snapshotProgress(ctx, prog)

	stats := progression.ComputeLevelStats(prog.XPTotal)

	return &api.AnswerResult{
		Feedback:             eval.Feedback,
		XPAwarded:            awarded + bonusXP,
		BaseXP:               awarded,
		BonusXP:              bonusXP,
		XPTotal:              prog.XPTotal,
		Streak:               streak,
		EvaluatedAt:          today.UTC().Format(time.RFC3339),
		DifficultyLevel:      diff.Label,
		DifficultyMultiplier: diff.Multiplier,
		WeekCompletedDays:    completed,
		WeekTotalDays:        progression.WeekDays,
		WeekBadgeEarned:      badgeEarned,
		BadgeName:            badgeName,
		Level:                stats.Level,
		XPToNextLevel:        stats.XPToNextLevel,
		NextLevelThreshold:   stats.NextLevelThreshold(),
		XPIntoLevel:          stats.XPIntoLevel,
		LevelProgressPercent: stats.ProgressPercent,
	}, nil
}

// PrimingSeen reports whether the user has ever viewed the priming
// material. The flag is durable: the full intro shows once, every
// later visit gets the short reminder framing.
func (s *Service) PrimingSeen(ctx context.Context, userID string) (bool, error) {
	prog, err := s.progress.Get(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("loading progress: %w", err)
	}
	return prog.PrimingSeenOn != "", nil
}

// MarkPrimingSeen records the first priming view. Later calls keep the
// original date.
func (s *Service) MarkPrimingSeen(ctx context.Context, userID string) error {
	prog, err := s.progress.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}
	if prog.PrimingSeenOn != "" {
		return nil
	}
	prog.PrimingSeenOn = s.now().Format(dayLayout)
	if err := s.progress.Save(ctx, prog); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

// snapshotProgress saves a restore point. Failures are swallowed: a
// missed snapshot never blocks a successful submission.
func (s *Service) snapshotProgress(ctx context.Context, prog *store.ProgressState) {
	snap := &store.Snapshot{
		Timestamp: s.now().UTC(),
		Data:      store.SnapshotData{Version: 1, Progress: prog},
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return
	}
	_ = s.snapshots.Prune(ctx, snapshotKeep)
}

// weekStanding returns the completed-day count and badge flag for the
// given week, resetting both when the bank has rolled into a new week.
func weekStanding(prog *store.ProgressState, weekIndex int) (int, bool) {
	if prog.WeekIndex != weekIndex {
		return 0, false
	}
	return prog.CompletedDays, prog.BadgeEarned
}

// nextStreak computes the streak value a submission today would have:
// continue from yesterday, hold on a same-day duplicate, restart
// otherwise.
func nextStreak(prog *store.ProgressState, today time.Time) int {
	if prog.LastAnsweredOn == "" {
		return 1
	}
	day := today.Format(dayLayout)
	yesterday := today.AddDate(0, 0, -1).Format(dayLayout)
	switch prog.LastAnsweredOn {
	case yesterday:
		return prog.Streak + 1
	case day:
		if prog.Streak > 1 {
			return prog.Streak
		}
		return 1
	default:
		return 1
	}
}

// displayStreak shows the stored streak only while it is still alive:
// a streak broken before today reads as zero.
func displayStreak(prog *store.ProgressState, today time.Time) int {
	if prog.LastAnsweredOn == "" {
		return 0
	}
	day := today.Format(dayLayout)
	yesterday := today.AddDate(0, 0, -1).Format(dayLayout)
	if prog.LastAnsweredOn == day || prog.LastAnsweredOn == yesterday {
		return prog.Streak
	}
	return 0
}
