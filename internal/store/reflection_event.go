package store

import (
	"context"
	"fmt"

	"github.com/thinkle/deep/ent"
	"github.com/thinkle/deep/ent/reflectionevent"
)

// journalRepo implements JournalRepo backed by ent and the global
// sequence counter.
type journalRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *journalRepo) AppendReflection(ctx context.Context, data ReflectionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReflectionEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetDay(data.Day).
		SetTheme(data.Theme).
		SetPrompt(data.Prompt).
		SetAnswer(data.Answer).
		SetDurationSeconds(data.DurationSeconds).
		SetFeedback(data.Feedback).
		SetXpAwarded(data.XPAwarded).
		SetBaseXp(data.BaseXP).
		SetBonusXp(data.BonusXP).
		SetStreak(data.Streak).
		SetDifficulty(data.Difficulty).
		SetMultiplier(data.Multiplier).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reflection event: %w", err)
	}
	return nil
}

func (r *journalRepo) ListReflections(ctx context.Context, userID string, opts QueryOpts) ([]ReflectionRecord, error) {
	q := r.client.ReflectionEvent.Query().
		Where(reflectionevent.UserID(userID)).
		Order(ent.Desc(reflectionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(reflectionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(reflectionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(reflectionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(reflectionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reflections: %w", err)
	}

	records := make([]ReflectionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ReflectionRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ReflectionEventData: ReflectionEventData{
				UserID:          e.UserID,
				QuestionID:      e.QuestionID,
				Day:             e.Day,
				Theme:           e.Theme,
				Prompt:          e.Prompt,
				Answer:          e.Answer,
				DurationSeconds: e.DurationSeconds,
				Feedback:        e.Feedback,
				XPAwarded:       e.XpAwarded,
				BaseXP:          e.BaseXp,
				BonusXP:         e.BonusXp,
				Streak:          e.Streak,
				Difficulty:      e.Difficulty,
				Multiplier:      e.Multiplier,
			},
		})
	}
	return records, nil
}

func (r *journalRepo) HasAnsweredOn(ctx context.Context, userID, day string) (bool, error) {
	exists, err := r.client.ReflectionEvent.Query().
		Where(reflectionevent.UserID(userID), reflectionevent.Day(day)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query answered on %s: %w", day, err)
	}
	return exists, nil
}

func (r *journalRepo) CountReflections(ctx context.Context, userID string) (int, error) {
	n, err := r.client.ReflectionEvent.Query().
		Where(reflectionevent.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count reflections: %w", err)
	}
	return n, nil
}
