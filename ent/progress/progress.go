// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progress type in the database.
	Label = "progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldXpTotal holds the string denoting the xp_total field in the database.
	FieldXpTotal = "xp_total"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldLastAnsweredOn holds the string denoting the last_answered_on field in the database.
	FieldLastAnsweredOn = "last_answered_on"
	// FieldWeekIndex holds the string denoting the week_index field in the database.
	FieldWeekIndex = "week_index"
	// FieldCompletedDays holds the string denoting the completed_days field in the database.
	FieldCompletedDays = "completed_days"
	// FieldBadgeEarned holds the string denoting the badge_earned field in the database.
	FieldBadgeEarned = "badge_earned"
	// FieldBadgeName holds the string denoting the badge_name field in the database.
	FieldBadgeName = "badge_name"
	// FieldLastFeedback holds the string denoting the last_feedback field in the database.
	FieldLastFeedback = "last_feedback"
	// FieldPrimingSeenOn holds the string denoting the priming_seen_on field in the database.
	FieldPrimingSeenOn = "priming_seen_on"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the progress in the database.
	Table = "progresses"
)

// Columns holds all SQL columns for progress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldXpTotal,
	FieldStreak,
	FieldLastAnsweredOn,
	FieldWeekIndex,
	FieldCompletedDays,
	FieldBadgeEarned,
	FieldBadgeName,
	FieldLastFeedback,
	FieldPrimingSeenOn,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultXpTotal holds the default value on creation for the "xp_total" field.
	DefaultXpTotal int
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultLastAnsweredOn holds the default value on creation for the "last_answered_on" field.
	DefaultLastAnsweredOn string
	// DefaultWeekIndex holds the default value on creation for the "week_index" field.
	DefaultWeekIndex int
	// DefaultCompletedDays holds the default value on creation for the "completed_days" field.
	DefaultCompletedDays int
	// DefaultBadgeEarned holds the default value on creation for the "badge_earned" field.
	DefaultBadgeEarned bool
	// DefaultBadgeName holds the default value on creation for the "badge_name" field.
	DefaultBadgeName string
	// DefaultLastFeedback holds the default value on creation for the "last_feedback" field.
	DefaultLastFeedback string
	// DefaultPrimingSeenOn holds the default value on creation for the "priming_seen_on" field.
	DefaultPrimingSeenOn string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Progress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByXpTotal orders the results by the xp_total field.
func ByXpTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpTotal, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByLastAnsweredOn orders the results by the last_answered_on field.
func ByLastAnsweredOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAnsweredOn, opts...).ToFunc()
}

// ByWeekIndex orders the results by the week_index field.
func ByWeekIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekIndex, opts...).ToFunc()
}

// ByCompletedDays orders the results by the completed_days field.
func ByCompletedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedDays, opts...).ToFunc()
}

// ByBadgeEarned orders the results by the badge_earned field.
func ByBadgeEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeEarned, opts...).ToFunc()
}

// ByBadgeName orders the results by the badge_name field.
func ByBadgeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeName, opts...).ToFunc()
}

// ByLastFeedback orders the results by the last_feedback field.
func ByLastFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFeedback, opts...).ToFunc()
}

// ByPrimingSeenOn orders the results by the priming_seen_on field.
func ByPrimingSeenOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimingSeenOn, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
