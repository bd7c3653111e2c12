package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Pref is a simple key-value setting: identity keys, UI toggles, and
// anything else that needs to survive restarts without its own table.
type Pref struct {
	ent.Schema
}

func (Pref) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique(),
		field.Text("value").
			Default(""),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Pref) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
	}
}
