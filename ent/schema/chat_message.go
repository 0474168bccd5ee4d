package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage is one turn of the tutoring transcript.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("action").
			Default("").
			Comment("Tutor action that produced an assistant message, empty for user messages"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
