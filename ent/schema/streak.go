package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Streak tracks consecutive days of study activity per user.
type Streak struct {
	ent.Schema
}

func (Streak) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Immutable(),
		field.Int("current").
			Default(0),
		field.Int("longest").
			Default(0),
		field.String("last_active_date").
			Default("").
			Comment("Local calendar date of last activity, YYYY-MM-DD"),
	}
}

func (Streak) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
