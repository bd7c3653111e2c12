// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/thinkle/deep/ent/llmrequestevent"
	"github.com/thinkle/deep/ent/pref"
	"github.com/thinkle/deep/ent/progress"
	"github.com/thinkle/deep/ent/reflectionevent"
	"github.com/thinkle/deep/ent/schema"
	"github.com/thinkle/deep/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	prefFields := schema.Pref{}.Fields()
	_ = prefFields
	// prefDescKey is the schema descriptor for key field.
	prefDescKey := prefFields[0].Descriptor()
	// pref.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	pref.KeyValidator = prefDescKey.Validators[0].(func(string) error)
	// prefDescValue is the schema descriptor for value field.
	prefDescValue := prefFields[1].Descriptor()
	// pref.DefaultValue holds the default value on creation for the value field.
	pref.DefaultValue = prefDescValue.Default.(string)
	// prefDescUpdatedAt is the schema descriptor for updated_at field.
	prefDescUpdatedAt := prefFields[2].Descriptor()
	// pref.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pref.DefaultUpdatedAt = prefDescUpdatedAt.Default.(func() time.Time)
	// pref.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pref.UpdateDefaultUpdatedAt = prefDescUpdatedAt.UpdateDefault.(func() time.Time)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescUserID is the schema descriptor for user_id field.
	progressDescUserID := progressFields[0].Descriptor()
	// progress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progress.UserIDValidator = progressDescUserID.Validators[0].(func(string) error)
	// progressDescXpTotal is the schema descriptor for xp_total field.
	progressDescXpTotal := progressFields[1].Descriptor()
	// progress.DefaultXpTotal holds the default value on creation for the xp_total field.
	progress.DefaultXpTotal = progressDescXpTotal.Default.(int)
	// progressDescStreak is the schema descriptor for streak field.
	progressDescStreak := progressFields[2].Descriptor()
	// progress.DefaultStreak holds the default value on creation for the streak field.
	progress.DefaultStreak = progressDescStreak.Default.(int)
	// progressDescLastAnsweredOn is the schema descriptor for last_answered_on field.
	progressDescLastAnsweredOn := progressFields[3].Descriptor()
	// progress.DefaultLastAnsweredOn holds the default value on creation for the last_answered_on field.
	progress.DefaultLastAnsweredOn = progressDescLastAnsweredOn.Default.(string)
	// progressDescWeekIndex is the schema descriptor for week_index field.
	progressDescWeekIndex := progressFields[4].Descriptor()
	// progress.DefaultWeekIndex holds the default value on creation for the week_index field.
	progress.DefaultWeekIndex = progressDescWeekIndex.Default.(int)
	// progressDescCompletedDays is the schema descriptor for completed_days field.
	progressDescCompletedDays := progressFields[5].Descriptor()
	// progress.DefaultCompletedDays holds the default value on creation for the completed_days field.
	progress.DefaultCompletedDays = progressDescCompletedDays.Default.(int)
	// progressDescBadgeEarned is the schema descriptor for badge_earned field.
	progressDescBadgeEarned := progressFields[6].Descriptor()
	// progress.DefaultBadgeEarned holds the default value on creation for the badge_earned field.
	progress.DefaultBadgeEarned = progressDescBadgeEarned.Default.(bool)
	// progressDescBadgeName is the schema descriptor for badge_name field.
	progressDescBadgeName := progressFields[7].Descriptor()
	// progress.DefaultBadgeName holds the default value on creation for the badge_name field.
	progress.DefaultBadgeName = progressDescBadgeName.Default.(string)
	// progressDescLastFeedback is the schema descriptor for last_feedback field.
	progressDescLastFeedback := progressFields[8].Descriptor()
	// progress.DefaultLastFeedback holds the default value on creation for the last_feedback field.
	progress.DefaultLastFeedback = progressDescLastFeedback.Default.(string)
	// progressDescPrimingSeenOn is the schema descriptor for priming_seen_on field.
	progressDescPrimingSeenOn := progressFields[9].Descriptor()
	// progress.DefaultPrimingSeenOn holds the default value on creation for the priming_seen_on field.
	progress.DefaultPrimingSeenOn = progressDescPrimingSeenOn.Default.(string)
	// progressDescUpdatedAt is the schema descriptor for updated_at field.
	progressDescUpdatedAt := progressFields[10].Descriptor()
	// progress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progress.DefaultUpdatedAt = progressDescUpdatedAt.Default.(func() time.Time)
	// progress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progress.UpdateDefaultUpdatedAt = progressDescUpdatedAt.UpdateDefault.(func() time.Time)
	reflectioneventMixin := schema.ReflectionEvent{}.Mixin()
	reflectioneventMixinFields0 := reflectioneventMixin[0].Fields()
	_ = reflectioneventMixinFields0
	reflectioneventFields := schema.ReflectionEvent{}.Fields()
	_ = reflectioneventFields
	// reflectioneventDescTimestamp is the schema descriptor for timestamp field.
	reflectioneventDescTimestamp := reflectioneventMixinFields0[1].Descriptor()
	// reflectionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reflectionevent.DefaultTimestamp = reflectioneventDescTimestamp.Default.(func() time.Time)
	// reflectioneventDescUserID is the schema descriptor for user_id field.
	reflectioneventDescUserID := reflectioneventFields[0].Descriptor()
	// reflectionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reflectionevent.UserIDValidator = reflectioneventDescUserID.Validators[0].(func(string) error)
	// reflectioneventDescQuestionID is the schema descriptor for question_id field.
	reflectioneventDescQuestionID := reflectioneventFields[1].Descriptor()
	// reflectionevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	reflectionevent.QuestionIDValidator = reflectioneventDescQuestionID.Validators[0].(func(string) error)
	// reflectioneventDescDay is the schema descriptor for day field.
	reflectioneventDescDay := reflectioneventFields[2].Descriptor()
	// reflectionevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	reflectionevent.DayValidator = reflectioneventDescDay.Validators[0].(func(string) error)
	// reflectioneventDescPrompt is the schema descriptor for prompt field.
	reflectioneventDescPrompt := reflectioneventFields[4].Descriptor()
	// reflectionevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	reflectionevent.PromptValidator = reflectioneventDescPrompt.Validators[0].(func(string) error)
	// reflectioneventDescAnswer is the schema descriptor for answer field.
	reflectioneventDescAnswer := reflectioneventFields[5].Descriptor()
	// reflectionevent.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	reflectionevent.AnswerValidator = reflectioneventDescAnswer.Validators[0].(func(string) error)
	// reflectioneventDescDurationSeconds is the schema descriptor for duration_seconds field.
	reflectioneventDescDurationSeconds := reflectioneventFields[6].Descriptor()
	// reflectionevent.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	reflectionevent.DefaultDurationSeconds = reflectioneventDescDurationSeconds.Default.(int)
	// reflectioneventDescBaseXp is the schema descriptor for base_xp field.
	reflectioneventDescBaseXp := reflectioneventFields[9].Descriptor()
	// reflectionevent.DefaultBaseXp holds the default value on creation for the base_xp field.
	reflectionevent.DefaultBaseXp = reflectioneventDescBaseXp.Default.(int)
	// reflectioneventDescBonusXp is the schema descriptor for bonus_xp field.
	reflectioneventDescBonusXp := reflectioneventFields[10].Descriptor()
	// reflectionevent.DefaultBonusXp holds the default value on creation for the bonus_xp field.
	reflectionevent.DefaultBonusXp = reflectioneventDescBonusXp.Default.(int)
	// reflectioneventDescMultiplier is the schema descriptor for multiplier field.
	reflectioneventDescMultiplier := reflectioneventFields[13].Descriptor()
	// reflectionevent.DefaultMultiplier holds the default value on creation for the multiplier field.
	reflectionevent.DefaultMultiplier = reflectioneventDescMultiplier.Default.(float64)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
