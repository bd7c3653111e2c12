// Code generated by ent, DO NOT EDIT.

package reflectionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/deep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldDay, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldTheme, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldPrompt, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldAnswer, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldDurationSeconds, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldFeedback, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// BaseXp applies equality check predicate on the "base_xp" field. It's identical to BaseXpEQ.
func BaseXp(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldBaseXp, v))
}

// BonusXp applies equality check predicate on the "bonus_xp" field. It's identical to BonusXpEQ.
func BonusXp(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldBonusXp, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldStreak, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Multiplier applies equality check predicate on the "multiplier" field. It's identical to MultiplierEQ.
func Multiplier(v float64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldMultiplier, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContainsFold(FieldDay, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContainsFold(FieldTheme, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContainsFold(FieldPrompt, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContainsFold(FieldAnswer, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldDurationSeconds, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContainsFold(FieldFeedback, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// BaseXpEQ applies the EQ predicate on the "base_xp" field.
func BaseXpEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldBaseXp, v))
}

// BaseXpNEQ applies the NEQ predicate on the "base_xp" field.
func BaseXpNEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldBaseXp, v))
}

// BaseXpIn applies the In predicate on the "base_xp" field.
func BaseXpIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldBaseXp, vs...))
}

// BaseXpNotIn applies the NotIn predicate on the "base_xp" field.
func BaseXpNotIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldBaseXp, vs...))
}

// BaseXpGT applies the GT predicate on the "base_xp" field.
func BaseXpGT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldBaseXp, v))
}

// BaseXpGTE applies the GTE predicate on the "base_xp" field.
func BaseXpGTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldBaseXp, v))
}

// BaseXpLT applies the LT predicate on the "base_xp" field.
func BaseXpLT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldBaseXp, v))
}

// BaseXpLTE applies the LTE predicate on the "base_xp" field.
func BaseXpLTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldBaseXp, v))
}

// BonusXpEQ applies the EQ predicate on the "bonus_xp" field.
func BonusXpEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldBonusXp, v))
}

// BonusXpNEQ applies the NEQ predicate on the "bonus_xp" field.
func BonusXpNEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldBonusXp, v))
}

// BonusXpIn applies the In predicate on the "bonus_xp" field.
func BonusXpIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldBonusXp, vs...))
}

// BonusXpNotIn applies the NotIn predicate on the "bonus_xp" field.
func BonusXpNotIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldBonusXp, vs...))
}

// BonusXpGT applies the GT predicate on the "bonus_xp" field.
func BonusXpGT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldBonusXp, v))
}

// BonusXpGTE applies the GTE predicate on the "bonus_xp" field.
func BonusXpGTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldBonusXp, v))
}

// BonusXpLT applies the LT predicate on the "bonus_xp" field.
func BonusXpLT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldBonusXp, v))
}

// BonusXpLTE applies the LTE predicate on the "bonus_xp" field.
func BonusXpLTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldBonusXp, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldStreak, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// MultiplierEQ applies the EQ predicate on the "multiplier" field.
func MultiplierEQ(v float64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldEQ(FieldMultiplier, v))
}

// MultiplierNEQ applies the NEQ predicate on the "multiplier" field.
func MultiplierNEQ(v float64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNEQ(FieldMultiplier, v))
}

// MultiplierIn applies the In predicate on the "multiplier" field.
func MultiplierIn(vs ...float64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldIn(FieldMultiplier, vs...))
}

// MultiplierNotIn applies the NotIn predicate on the "multiplier" field.
func MultiplierNotIn(vs ...float64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldNotIn(FieldMultiplier, vs...))
}

// MultiplierGT applies the GT predicate on the "multiplier" field.
func MultiplierGT(v float64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGT(FieldMultiplier, v))
}

// MultiplierGTE applies the GTE predicate on the "multiplier" field.
func MultiplierGTE(v float64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldGTE(FieldMultiplier, v))
}

// MultiplierLT applies the LT predicate on the "multiplier" field.
func MultiplierLT(v float64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLT(FieldMultiplier, v))
}

// MultiplierLTE applies the LTE predicate on the "multiplier" field.
func MultiplierLTE(v float64) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.FieldLTE(FieldMultiplier, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReflectionEvent) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReflectionEvent) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReflectionEvent) predicate.ReflectionEvent {
	return predicate.ReflectionEvent(sql.NotPredicates(p))
}
