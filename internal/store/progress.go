package store

import (
	"context"
	"fmt"

	"github.com/thinkle/deep/ent"
	"github.com/thinkle/deep/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID string) (*ProgressState, error) {
	p, err := r.client.Progress.Query().
		Where(progress.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &ProgressState{UserID: userID}, nil
		}
		return nil, fmt.Errorf("query progress for %s: %w", userID, err)
	}
	return &ProgressState{
		UserID:         p.UserID,
		XPTotal:        p.XpTotal,
		Streak:         p.Streak,
		LastAnsweredOn: p.LastAnsweredOn,
		WeekIndex:      p.WeekIndex,
		CompletedDays:  p.CompletedDays,
		BadgeEarned:    p.BadgeEarned,
		BadgeName:      p.BadgeName,
		LastFeedback:   p.LastFeedback,
		PrimingSeenOn:  p.PrimingSeenOn,
	}, nil
}

func (r *progressRepo) Save(ctx context.Context, state *ProgressState) error {
	n, err := r.client.Progress.Update().
		Where(progress.UserID(state.UserID)).
		SetXpTotal(state.XPTotal).
		SetStreak(state.Streak).
		SetLastAnsweredOn(state.LastAnsweredOn).
		SetWeekIndex(state.WeekIndex).
		SetCompletedDays(state.CompletedDays).
		SetBadgeEarned(state.BadgeEarned).
		SetBadgeName(state.BadgeName).
		SetLastFeedback(state.LastFeedback).
		SetPrimingSeenOn(state.PrimingSeenOn).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress for %s: %w", state.UserID, err)
	}
	if n > 0 {
		return nil
	}
	_, err = r.client.Progress.Create().
		SetUserID(state.UserID).
		SetXpTotal(state.XPTotal).
		SetStreak(state.Streak).
		SetLastAnsweredOn(state.LastAnsweredOn).
		SetWeekIndex(state.WeekIndex).
		SetCompletedDays(state.CompletedDays).
		SetBadgeEarned(state.BadgeEarned).
		SetBadgeName(state.BadgeName).
		SetLastFeedback(state.LastFeedback).
		SetPrimingSeenOn(state.PrimingSeenOn).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress for %s: %w", state.UserID, err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.Progress.Delete().
		Where(progress.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress for %s: %w", userID, err)
	}
	return nil
}
