// Package api defines the reflection service contract: the request and
// response types exchanged with a scoring backend, and the Gateway
// interface the rest of the app talks to. Implementations include the
// HTTP client in this package and the offline service in
// internal/reflect.
package api

import "context"

// PrimingContent is the optional pre-session material shown before the
// timer starts.
type PrimingContent struct {
	EmotionalHook  string `json:"emotionalHook"`
	TeaserQuestion string `json:"teaserQuestion"`
	SomaticCue     string `json:"somaticCue"`
	CognitiveCue   string `json:"cognitiveCue"`
}

// DifficultyInfo describes the difficulty tier of today's prompt.
type DifficultyInfo struct {
	Label      string  `json:"label"`
	Score      int     `json:"score"`
	Multiplier float64 `json:"multiplier"`
}

// WeekProgress summarizes the rolling week tracker.
type WeekProgress struct {
	CompletedDays int  `json:"completedDays"`
	TotalDays     int  `json:"totalDays"`
	BadgeEarned   bool `json:"badgeEarned"`
}

// PreviousFeedback carries the verdict from the user's last submission.
// The backend sends null when there is no history yet.
type PreviousFeedback struct {
	Feedback    string `json:"feedback"`
	SubmittedAt string `json:"submittedAt"`
	QuestionID  string `json:"questionId"`
}

// ChallengeMode is an optional difficulty variant advertised alongside
// the daily question.
type ChallengeMode struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier,omitempty"`
	Unlocked    bool    `json:"unlocked,omitempty"`
}

// RewardHighlight is a teaser for an earned or upcoming reward.
type RewardHighlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned,omitempty"`
}

// DopamineContent is the variable-reward material attached to a daily
// question. All fields are optional.
type DopamineContent struct {
	CuriosityHook         string            `json:"curiosityHook,omitempty"`
	CuriosityPrompts      []string          `json:"curiosityPrompts,omitempty"`
	ActiveDifficulty      string            `json:"activeDifficulty,omitempty"`
	ChallengeModes        []ChallengeMode   `json:"challengeModes,omitempty"`
	RewardHighlights      []RewardHighlight `json:"rewardHighlights,omitempty"`
	AnticipationTeaser    string            `json:"anticipationTeaser,omitempty"`
	NextPromptAvailableAt string            `json:"nextPromptAvailableAt,omitempty"`
}

// DailyQuestion is the payload of the daily question endpoint.
type DailyQuestion struct {
	ID               string            `json:"id"`
	Prompt           string            `json:"prompt"`
	Theme            string            `json:"theme"`
	WeekIndex        int               `json:"weekIndex"`
	DayIndex         int               `json:"dayIndex"`
	AvailableOn      string            `json:"availableOn"`
	TimerSeconds     int               `json:"timerSeconds"`
	XPTotal          int               `json:"xpTotal"`
	Streak           int               `json:"streak"`
	PreviousFeedback *PreviousFeedback `json:"previousFeedback"`
	Priming          *PrimingContent   `json:"priming,omitempty"`
	Difficulty       DifficultyInfo    `json:"difficulty"`
	WeekProgress     WeekProgress      `json:"weekProgress"`
	HasAnsweredToday bool              `json:"hasAnsweredToday"`
	Dopamine         *DopamineContent  `json:"dopamine,omitempty"`
}

// AnswerSubmission is the payload sent when the user finishes writing.
type AnswerSubmission struct {
	QuestionID      string `json:"questionId"`
	Answer          string `json:"answer"`
	UserID          string `json:"userId,omitempty"`
	DurationSeconds int    `json:"durationSeconds"`
}

// AnswerResult is the scorer's verdict on a submission.
type AnswerResult struct {
	Feedback             string  `json:"feedback"`
	XPAwarded            int     `json:"xpAwarded"`
	BaseXP               int     `json:"baseXp"`
	BonusXP              int     `json:"bonusXp"`
	XPTotal              int     `json:"xpTotal"`
	Streak               int     `json:"streak"`
	EvaluatedAt          string  `json:"evaluatedAt"`
	DifficultyLevel      string  `json:"difficultyLevel"`
	DifficultyMultiplier float64 `json:"difficultyMultiplier"`
	WeekCompletedDays    int     `json:"weekCompletedDays"`
	WeekTotalDays        int     `json:"weekTotalDays"`
	WeekBadgeEarned      bool    `json:"weekBadgeEarned"`
	BadgeName            string  `json:"badgeName"`
	Level                int     `json:"level"`
	XPToNextLevel        int     `json:"xpToNextLevel"`
	NextLevelThreshold   int     `json:"nextLevelThreshold"`
	XPIntoLevel          int     `json:"xpIntoLevel"`
	LevelProgressPercent int     `json:"levelProgressPercent"`
}

// Gateway is the reflection backend as seen by the UI: fetch today's
// question for a user, submit an answer, get the verdict.
type Gateway interface {
	DailyQuestion(ctx context.Context, userID string) (*DailyQuestion, error)
	SubmitAnswer(ctx context.Context, sub AnswerSubmission) (*AnswerResult, error)
}
