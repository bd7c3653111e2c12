// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/deep/ent/progress"
)

// Progress is the model entity for the Progress schema.
type Progress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Identity this progress belongs to
	UserID string `json:"user_id,omitempty"`
	// Cumulative XP across all reflections
	XpTotal int `json:"xp_total,omitempty"`
	// Consecutive-day streak
	Streak int `json:"streak,omitempty"`
	// Local day of the most recent answer, YYYY-MM-DD
	LastAnsweredOn string `json:"last_answered_on,omitempty"`
	// Zero-based index of the current week cycle
	WeekIndex int `json:"week_index,omitempty"`
	// Days completed in the current week
	CompletedDays int `json:"completed_days,omitempty"`
	// Whether the current week badge was earned
	BadgeEarned bool `json:"badge_earned,omitempty"`
	// Name of the earned week badge
	BadgeName string `json:"badge_name,omitempty"`
	// Feedback from the most recent reflection
	LastFeedback string `json:"last_feedback,omitempty"`
	// Local day priming was last viewed, YYYY-MM-DD
	PrimingSeenOn string `json:"priming_seen_on,omitempty"`
	// Last modification time
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Progress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progress.FieldBadgeEarned:
			values[i] = new(sql.NullBool)
		case progress.FieldID, progress.FieldXpTotal, progress.FieldStreak, progress.FieldWeekIndex, progress.FieldCompletedDays:
			values[i] = new(sql.NullInt64)
		case progress.FieldUserID, progress.FieldLastAnsweredOn, progress.FieldBadgeName, progress.FieldLastFeedback, progress.FieldPrimingSeenOn:
			values[i] = new(sql.NullString)
		case progress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Progress fields.
func (_m *Progress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case progress.FieldXpTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_total", values[i])
			} else if value.Valid {
				_m.XpTotal = int(value.Int64)
			}
		case progress.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case progress.FieldLastAnsweredOn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_answered_on", values[i])
			} else if value.Valid {
				_m.LastAnsweredOn = value.String
			}
		case progress.FieldWeekIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field week_index", values[i])
			} else if value.Valid {
				_m.WeekIndex = int(value.Int64)
			}
		case progress.FieldCompletedDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_days", values[i])
			} else if value.Valid {
				_m.CompletedDays = int(value.Int64)
			}
		case progress.FieldBadgeEarned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field badge_earned", values[i])
			} else if value.Valid {
				_m.BadgeEarned = value.Bool
			}
		case progress.FieldBadgeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge_name", values[i])
			} else if value.Valid {
				_m.BadgeName = value.String
			}
		case progress.FieldLastFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_feedback", values[i])
			} else if value.Valid {
				_m.LastFeedback = value.String
			}
		case progress.FieldPrimingSeenOn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priming_seen_on", values[i])
			} else if value.Valid {
				_m.PrimingSeenOn = value.String
			}
		case progress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Progress.
// This includes values selected through modifiers, order, etc.
func (_m *Progress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Progress.
// Note that you need to call Progress.Unwrap() before calling this method if this Progress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Progress) Update() *ProgressUpdateOne {
	return NewProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Progress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Progress) Unwrap() *Progress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Progress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Progress) String() string {
	var builder strings.Builder
	builder.WriteString("Progress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("xp_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpTotal))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("last_answered_on=")
	builder.WriteString(_m.LastAnsweredOn)
	builder.WriteString(", ")
	builder.WriteString("week_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeekIndex))
	builder.WriteString(", ")
	builder.WriteString("completed_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedDays))
	builder.WriteString(", ")
	builder.WriteString("badge_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.BadgeEarned))
	builder.WriteString(", ")
	builder.WriteString("badge_name=")
	builder.WriteString(_m.BadgeName)
	builder.WriteString(", ")
	builder.WriteString("last_feedback=")
	builder.WriteString(_m.LastFeedback)
	builder.WriteString(", ")
	builder.WriteString("priming_seen_on=")
	builder.WriteString(_m.PrimingSeenOn)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Progresses is a parsable slice of Progress.
type Progresses []*Progress
