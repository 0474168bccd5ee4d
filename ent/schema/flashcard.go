package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Flashcard is a spaced-repetition card scheduled with SM-2.
type Flashcard struct {
	ent.Schema
}

func (Flashcard) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Immutable(),
		field.String("concept").
			Comment("Concept this card drills, matches keys in the mastery map"),
		field.Text("front"),
		field.Text("back"),
		field.Float("ease_factor").
			Default(2.5),
		field.Int("interval_days").
			Default(0),
		field.Int("repetitions").
			Default(0),
		field.Time("due_at").
			Default(time.Now),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Flashcard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "due_at"),
		index.Fields("user_id", "concept"),
	}
}
