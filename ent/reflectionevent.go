// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/thinkle/deep/ent/reflectionevent"
)

// ReflectionEvent is the model entity for the ReflectionEvent schema.
type ReflectionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Identity the reflection belongs to
	UserID string `json:"user_id,omitempty"`
	// Question identifier, e.g. week-2-day-5
	QuestionID string `json:"question_id,omitempty"`
	// Local calendar day in YYYY-MM-DD form
	Day string `json:"day,omitempty"`
	// Weekly theme of the prompt
	Theme string `json:"theme,omitempty"`
	// The question shown
	Prompt string `json:"prompt,omitempty"`
	// What the user wrote
	Answer string `json:"answer,omitempty"`
	// Seconds spent writing, clamped to the timer
	DurationSeconds int `json:"duration_seconds,omitempty"`
	// Scorer feedback shown in the celebration
	Feedback string `json:"feedback,omitempty"`
	// Total XP for this reflection including bonus
	XpAwarded int `json:"xp_awarded,omitempty"`
	// XP before the week completion bonus
	BaseXp int `json:"base_xp,omitempty"`
	// Week completion bonus portion
	BonusXp int `json:"bonus_xp,omitempty"`
	// Streak value after this reflection
	Streak int `json:"streak,omitempty"`
	// Difficulty label: primer, deepening, mastery
	Difficulty string `json:"difficulty,omitempty"`
	// Difficulty multiplier applied to base XP
	Multiplier   float64 `json:"multiplier,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReflectionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reflectionevent.FieldMultiplier:
			values[i] = new(sql.NullFloat64)
		case reflectionevent.FieldID, reflectionevent.FieldSequence, reflectionevent.FieldDurationSeconds, reflectionevent.FieldXpAwarded, reflectionevent.FieldBaseXp, reflectionevent.FieldBonusXp, reflectionevent.FieldStreak:
			values[i] = new(sql.NullInt64)
		case reflectionevent.FieldUserID, reflectionevent.FieldQuestionID, reflectionevent.FieldDay, reflectionevent.FieldTheme, reflectionevent.FieldPrompt, reflectionevent.FieldAnswer, reflectionevent.FieldFeedback, reflectionevent.FieldDifficulty:
			values[i] = new(sql.NullString)
		case reflectionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReflectionEvent fields.
func (_m *ReflectionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reflectionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reflectionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reflectionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reflectionevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case reflectionevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case reflectionevent.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		case reflectionevent.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = value.String
			}
		case reflectionevent.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case reflectionevent.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case reflectionevent.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = int(value.Int64)
			}
		case reflectionevent.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case reflectionevent.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		case reflectionevent.FieldBaseXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field base_xp", values[i])
			} else if value.Valid {
				_m.BaseXp = int(value.Int64)
			}
		case reflectionevent.FieldBonusXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bonus_xp", values[i])
			} else if value.Valid {
				_m.BonusXp = int(value.Int64)
			}
		case reflectionevent.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case reflectionevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case reflectionevent.FieldMultiplier:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field multiplier", values[i])
			} else if value.Valid {
				_m.Multiplier = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReflectionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReflectionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReflectionEvent.
// Note that you need to call ReflectionEvent.Unwrap() before calling this method if this ReflectionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReflectionEvent) Update() *ReflectionEventUpdateOne {
	return NewReflectionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReflectionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReflectionEvent) Unwrap() *ReflectionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReflectionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReflectionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReflectionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day)
	builder.WriteString(", ")
	builder.WriteString("theme=")
	builder.WriteString(_m.Theme)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteString(", ")
	builder.WriteString("base_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseXp))
	builder.WriteString(", ")
	builder.WriteString("bonus_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.BonusXp))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("multiplier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Multiplier))
	builder.WriteByte(')')
	return builder.String()
}

// ReflectionEvents is a parsable slice of ReflectionEvent.
type ReflectionEvents []*ReflectionEvent
