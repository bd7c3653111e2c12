// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PrefsColumns holds the columns for the "prefs" table.
	PrefsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PrefsTable holds the schema information for the "prefs" table.
	PrefsTable = &schema.Table{
		Name:       "prefs",
		Columns:    PrefsColumns,
		PrimaryKey: []*schema.Column{PrefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pref_key",
				Unique:  true,
				Columns: []*schema.Column{PrefsColumns[1]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "xp_total", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_answered_on", Type: field.TypeString, Default: ""},
		{Name: "week_index", Type: field.TypeInt, Default: 0},
		{Name: "completed_days", Type: field.TypeInt, Default: 0},
		{Name: "badge_earned", Type: field.TypeBool, Default: false},
		{Name: "badge_name", Type: field.TypeString, Default: ""},
		{Name: "last_feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "priming_seen_on", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progress_user_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressesColumns[1]},
			},
		},
	}
	// ReflectionEventsColumns holds the columns for the "reflection_events" table.
	ReflectionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
		{Name: "theme", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "duration_seconds", Type: field.TypeInt, Default: 0},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647},
		{Name: "xp_awarded", Type: field.TypeInt},
		{Name: "base_xp", Type: field.TypeInt, Default: 0},
		{Name: "bonus_xp", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "multiplier", Type: field.TypeFloat64, Default: 1},
	}
	// ReflectionEventsTable holds the schema information for the "reflection_events" table.
	ReflectionEventsTable = &schema.Table{
		Name:       "reflection_events",
		Columns:    ReflectionEventsColumns,
		PrimaryKey: []*schema.Column{ReflectionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reflectionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReflectionEventsColumns[1]},
			},
			{
				Name:    "reflectionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReflectionEventsColumns[2]},
			},
			{
				Name:    "reflectionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReflectionEventsColumns[3]},
			},
			{
				Name:    "reflectionevent_user_id_day",
				Unique:  false,
				Columns: []*schema.Column{ReflectionEventsColumns[3], ReflectionEventsColumns[5]},
			},
			{
				Name:    "reflectionevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{ReflectionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		PrefsTable,
		ProgressesTable,
		ReflectionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
