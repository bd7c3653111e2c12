package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress is the per-user gamification state: XP total, streak, and
// the rolling week tracker. One row per identity, updated in place on
// every accepted answer.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Identity this progress belongs to"),
		field.Int("xp_total").
			Default(0).
			Comment("Cumulative XP across all reflections"),
		field.Int("streak").
			Default(0).
			Comment("Consecutive-day streak"),
		field.String("last_answered_on").
			Default("").
			Comment("Local day of the most recent answer, YYYY-MM-DD"),
		field.Int("week_index").
			Default(0).
			Comment("Zero-based index of the current week cycle"),
		field.Int("completed_days").
			Default(0).
			Comment("Days completed in the current week"),
		field.Bool("badge_earned").
			Default(false).
			Comment("Whether the current week badge was earned"),
		field.String("badge_name").
			Default("").
			Comment("Name of the earned week badge"),
		field.Text("last_feedback").
			Default("").
			Comment("Feedback from the most recent reflection"),
		field.String("priming_seen_on").
			Default("").
			Comment("Local day priming was last viewed, YYYY-MM-DD"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last modification time"),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
