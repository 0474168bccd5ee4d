package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/prefrontal-labs/mindly-app/internal/tutor"
)

// TutorSession holds the full adaptive-tutoring state for one student.
// One row per user, updated after every chat turn.
type TutorSession struct {
	ent.Schema
}

func (TutorSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Immutable().
			Comment("Owner of this session state"),
		field.String("exam_domain").
			Default("general").
			Comment("Exam the student is preparing for"),
		field.JSON("state", &tutor.StudentState{}).
			Comment("Serialized student model: mastery map, streaks, pending question"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last turn that touched this state"),
	}
}

func (TutorSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
