package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReflectionEvent records one completed daily reflection. It is the
// append-only journal the history screen reads and the offline scorer
// replays to rebuild progress.
type ReflectionEvent struct {
	ent.Schema
}

func (ReflectionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReflectionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Identity the reflection belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Question identifier, e.g. week-2-day-5"),
		field.String("day").
			NotEmpty().
			Comment("Local calendar day in YYYY-MM-DD form"),
		field.String("theme").
			Comment("Weekly theme of the prompt"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.Text("answer").
			NotEmpty().
			Comment("What the user wrote"),
		field.Int("duration_seconds").
			Default(0).
			Comment("Seconds spent writing, clamped to the timer"),
		field.Text("feedback").
			Comment("Scorer feedback shown in the celebration"),
		field.Int("xp_awarded").
			Comment("Total XP for this reflection including bonus"),
		field.Int("base_xp").
			Default(0).
			Comment("XP before the week completion bonus"),
		field.Int("bonus_xp").
			Default(0).
			Comment("Week completion bonus portion"),
		field.Int("streak").
			Comment("Streak value after this reflection"),
		field.String("difficulty").
			Comment("Difficulty label: primer, deepening, mastery"),
		field.Float("multiplier").
			Default(1.0).
			Comment("Difficulty multiplier applied to base XP"),
	}
}

func (ReflectionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "day"),
		index.Fields("question_id"),
	}
}
