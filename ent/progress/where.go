// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/deep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUserID, v))
}

// XpTotal applies equality check predicate on the "xp_total" field. It's identical to XpTotalEQ.
func XpTotal(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldXpTotal, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStreak, v))
}

// LastAnsweredOn applies equality check predicate on the "last_answered_on" field. It's identical to LastAnsweredOnEQ.
func LastAnsweredOn(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastAnsweredOn, v))
}

// WeekIndex applies equality check predicate on the "week_index" field. It's identical to WeekIndexEQ.
func WeekIndex(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldWeekIndex, v))
}

// CompletedDays applies equality check predicate on the "completed_days" field. It's identical to CompletedDaysEQ.
func CompletedDays(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompletedDays, v))
}

// BadgeEarned applies equality check predicate on the "badge_earned" field. It's identical to BadgeEarnedEQ.
func BadgeEarned(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldBadgeEarned, v))
}

// BadgeName applies equality check predicate on the "badge_name" field. It's identical to BadgeNameEQ.
func BadgeName(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldBadgeName, v))
}

// LastFeedback applies equality check predicate on the "last_feedback" field. It's identical to LastFeedbackEQ.
func LastFeedback(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastFeedback, v))
}

// PrimingSeenOn applies equality check predicate on the "priming_seen_on" field. It's identical to PrimingSeenOnEQ.
func PrimingSeenOn(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldPrimingSeenOn, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldUserID, v))
}

// XpTotalEQ applies the EQ predicate on the "xp_total" field.
func XpTotalEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldXpTotal, v))
}

// XpTotalNEQ applies the NEQ predicate on the "xp_total" field.
func XpTotalNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldXpTotal, v))
}

// XpTotalIn applies the In predicate on the "xp_total" field.
func XpTotalIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldXpTotal, vs...))
}

// XpTotalNotIn applies the NotIn predicate on the "xp_total" field.
func XpTotalNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldXpTotal, vs...))
}

// XpTotalGT applies the GT predicate on the "xp_total" field.
func XpTotalGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldXpTotal, v))
}

// XpTotalGTE applies the GTE predicate on the "xp_total" field.
func XpTotalGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldXpTotal, v))
}

// XpTotalLT applies the LT predicate on the "xp_total" field.
func XpTotalLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldXpTotal, v))
}

// XpTotalLTE applies the LTE predicate on the "xp_total" field.
func XpTotalLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldXpTotal, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldStreak, v))
}

// LastAnsweredOnEQ applies the EQ predicate on the "last_answered_on" field.
func LastAnsweredOnEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastAnsweredOn, v))
}

// LastAnsweredOnNEQ applies the NEQ predicate on the "last_answered_on" field.
func LastAnsweredOnNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldLastAnsweredOn, v))
}

// LastAnsweredOnIn applies the In predicate on the "last_answered_on" field.
func LastAnsweredOnIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldLastAnsweredOn, vs...))
}

// LastAnsweredOnNotIn applies the NotIn predicate on the "last_answered_on" field.
func LastAnsweredOnNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldLastAnsweredOn, vs...))
}

// LastAnsweredOnGT applies the GT predicate on the "last_answered_on" field.
func LastAnsweredOnGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldLastAnsweredOn, v))
}

// LastAnsweredOnGTE applies the GTE predicate on the "last_answered_on" field.
func LastAnsweredOnGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldLastAnsweredOn, v))
}

// LastAnsweredOnLT applies the LT predicate on the "last_answered_on" field.
func LastAnsweredOnLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldLastAnsweredOn, v))
}

// LastAnsweredOnLTE applies the LTE predicate on the "last_answered_on" field.
func LastAnsweredOnLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldLastAnsweredOn, v))
}

// LastAnsweredOnContains applies the Contains predicate on the "last_answered_on" field.
func LastAnsweredOnContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldLastAnsweredOn, v))
}

// LastAnsweredOnHasPrefix applies the HasPrefix predicate on the "last_answered_on" field.
func LastAnsweredOnHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldLastAnsweredOn, v))
}

// LastAnsweredOnHasSuffix applies the HasSuffix predicate on the "last_answered_on" field.
func LastAnsweredOnHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldLastAnsweredOn, v))
}

// LastAnsweredOnEqualFold applies the EqualFold predicate on the "last_answered_on" field.
func LastAnsweredOnEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldLastAnsweredOn, v))
}

// LastAnsweredOnContainsFold applies the ContainsFold predicate on the "last_answered_on" field.
func LastAnsweredOnContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldLastAnsweredOn, v))
}

// WeekIndexEQ applies the EQ predicate on the "week_index" field.
func WeekIndexEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldWeekIndex, v))
}

// WeekIndexNEQ applies the NEQ predicate on the "week_index" field.
func WeekIndexNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldWeekIndex, v))
}

// WeekIndexIn applies the In predicate on the "week_index" field.
func WeekIndexIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldWeekIndex, vs...))
}

// WeekIndexNotIn applies the NotIn predicate on the "week_index" field.
func WeekIndexNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldWeekIndex, vs...))
}

// WeekIndexGT applies the GT predicate on the "week_index" field.
func WeekIndexGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldWeekIndex, v))
}

// WeekIndexGTE applies the GTE predicate on the "week_index" field.
func WeekIndexGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldWeekIndex, v))
}

// WeekIndexLT applies the LT predicate on the "week_index" field.
func WeekIndexLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldWeekIndex, v))
}

// WeekIndexLTE applies the LTE predicate on the "week_index" field.
func WeekIndexLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldWeekIndex, v))
}

// CompletedDaysEQ applies the EQ predicate on the "completed_days" field.
func CompletedDaysEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompletedDays, v))
}

// CompletedDaysNEQ applies the NEQ predicate on the "completed_days" field.
func CompletedDaysNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCompletedDays, v))
}

// CompletedDaysIn applies the In predicate on the "completed_days" field.
func CompletedDaysIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldCompletedDays, vs...))
}

// CompletedDaysNotIn applies the NotIn predicate on the "completed_days" field.
func CompletedDaysNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldCompletedDays, vs...))
}

// CompletedDaysGT applies the GT predicate on the "completed_days" field.
func CompletedDaysGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldCompletedDays, v))
}

// CompletedDaysGTE applies the GTE predicate on the "completed_days" field.
func CompletedDaysGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldCompletedDays, v))
}

// CompletedDaysLT applies the LT predicate on the "completed_days" field.
func CompletedDaysLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldCompletedDays, v))
}

// CompletedDaysLTE applies the LTE predicate on the "completed_days" field.
func CompletedDaysLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldCompletedDays, v))
}

// BadgeEarnedEQ applies the EQ predicate on the "badge_earned" field.
func BadgeEarnedEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldBadgeEarned, v))
}

// BadgeEarnedNEQ applies the NEQ predicate on the "badge_earned" field.
func BadgeEarnedNEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldBadgeEarned, v))
}

// BadgeNameEQ applies the EQ predicate on the "badge_name" field.
func BadgeNameEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldBadgeName, v))
}

// BadgeNameNEQ applies the NEQ predicate on the "badge_name" field.
func BadgeNameNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldBadgeName, v))
}

// BadgeNameIn applies the In predicate on the "badge_name" field.
func BadgeNameIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldBadgeName, vs...))
}

// BadgeNameNotIn applies the NotIn predicate on the "badge_name" field.
func BadgeNameNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldBadgeName, vs...))
}

// BadgeNameGT applies the GT predicate on the "badge_name" field.
func BadgeNameGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldBadgeName, v))
}

// BadgeNameGTE applies the GTE predicate on the "badge_name" field.
func BadgeNameGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldBadgeName, v))
}

// BadgeNameLT applies the LT predicate on the "badge_name" field.
func BadgeNameLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldBadgeName, v))
}

// BadgeNameLTE applies the LTE predicate on the "badge_name" field.
func BadgeNameLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldBadgeName, v))
}

// BadgeNameContains applies the Contains predicate on the "badge_name" field.
func BadgeNameContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldBadgeName, v))
}

// BadgeNameHasPrefix applies the HasPrefix predicate on the "badge_name" field.
func BadgeNameHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldBadgeName, v))
}

// BadgeNameHasSuffix applies the HasSuffix predicate on the "badge_name" field.
func BadgeNameHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldBadgeName, v))
}

// BadgeNameEqualFold applies the EqualFold predicate on the "badge_name" field.
func BadgeNameEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldBadgeName, v))
}

// BadgeNameContainsFold applies the ContainsFold predicate on the "badge_name" field.
func BadgeNameContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldBadgeName, v))
}

// LastFeedbackEQ applies the EQ predicate on the "last_feedback" field.
func LastFeedbackEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastFeedback, v))
}

// LastFeedbackNEQ applies the NEQ predicate on the "last_feedback" field.
func LastFeedbackNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldLastFeedback, v))
}

// LastFeedbackIn applies the In predicate on the "last_feedback" field.
func LastFeedbackIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldLastFeedback, vs...))
}

// LastFeedbackNotIn applies the NotIn predicate on the "last_feedback" field.
func LastFeedbackNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldLastFeedback, vs...))
}

// LastFeedbackGT applies the GT predicate on the "last_feedback" field.
func LastFeedbackGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldLastFeedback, v))
}

// LastFeedbackGTE applies the GTE predicate on the "last_feedback" field.
func LastFeedbackGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldLastFeedback, v))
}

// LastFeedbackLT applies the LT predicate on the "last_feedback" field.
func LastFeedbackLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldLastFeedback, v))
}

// LastFeedbackLTE applies the LTE predicate on the "last_feedback" field.
func LastFeedbackLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldLastFeedback, v))
}

// LastFeedbackContains applies the Contains predicate on the "last_feedback" field.
func LastFeedbackContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldLastFeedback, v))
}

// LastFeedbackHasPrefix applies the HasPrefix predicate on the "last_feedback" field.
func LastFeedbackHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldLastFeedback, v))
}

// LastFeedbackHasSuffix applies the HasSuffix predicate on the "last_feedback" field.
func LastFeedbackHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldLastFeedback, v))
}

// LastFeedbackEqualFold applies the EqualFold predicate on the "last_feedback" field.
func LastFeedbackEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldLastFeedback, v))
}

// LastFeedbackContainsFold applies the ContainsFold predicate on the "last_feedback" field.
func LastFeedbackContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldLastFeedback, v))
}

// PrimingSeenOnEQ applies the EQ predicate on the "priming_seen_on" field.
func PrimingSeenOnEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldPrimingSeenOn, v))
}

// PrimingSeenOnNEQ applies the NEQ predicate on the "priming_seen_on" field.
func PrimingSeenOnNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldPrimingSeenOn, v))
}

// PrimingSeenOnIn applies the In predicate on the "priming_seen_on" field.
func PrimingSeenOnIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldPrimingSeenOn, vs...))
}

// PrimingSeenOnNotIn applies the NotIn predicate on the "priming_seen_on" field.
func PrimingSeenOnNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldPrimingSeenOn, vs...))
}

// PrimingSeenOnGT applies the GT predicate on the "priming_seen_on" field.
func PrimingSeenOnGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldPrimingSeenOn, v))
}

// PrimingSeenOnGTE applies the GTE predicate on the "priming_seen_on" field.
func PrimingSeenOnGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldPrimingSeenOn, v))
}

// PrimingSeenOnLT applies the LT predicate on the "priming_seen_on" field.
func PrimingSeenOnLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldPrimingSeenOn, v))
}

// PrimingSeenOnLTE applies the LTE predicate on the "priming_seen_on" field.
func PrimingSeenOnLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldPrimingSeenOn, v))
}

// PrimingSeenOnContains applies the Contains predicate on the "priming_seen_on" field.
func PrimingSeenOnContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldPrimingSeenOn, v))
}

// PrimingSeenOnHasPrefix applies the HasPrefix predicate on the "priming_seen_on" field.
func PrimingSeenOnHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldPrimingSeenOn, v))
}

// PrimingSeenOnHasSuffix applies the HasSuffix predicate on the "priming_seen_on" field.
func PrimingSeenOnHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldPrimingSeenOn, v))
}

// PrimingSeenOnEqualFold applies the EqualFold predicate on the "priming_seen_on" field.
func PrimingSeenOnEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldPrimingSeenOn, v))
}

// PrimingSeenOnContainsFold applies the ContainsFold predicate on the "priming_seen_on" field.
func PrimingSeenOnContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldPrimingSeenOn, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}
