// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "action", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[5]},
			},
		},
	}
	// FlashcardsColumns holds the columns for the "flashcards" table.
	FlashcardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "front", Type: field.TypeString, Size: 2147483647},
		{Name: "back", Type: field.TypeString, Size: 2147483647},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FlashcardsTable holds the schema information for the "flashcards" table.
	FlashcardsTable = &schema.Table{
		Name:       "flashcards",
		Columns:    FlashcardsColumns,
		PrimaryKey: []*schema.Column{FlashcardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flashcard_user_id_due_at",
				Unique:  false,
				Columns: []*schema.Column{FlashcardsColumns[1], FlashcardsColumns[8]},
			},
			{
				Name:    "flashcard_user_id_concept",
				Unique:  false,
				Columns: []*schema.Column{FlashcardsColumns[1], FlashcardsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// StreaksColumns holds the columns for the "streaks" table.
	StreaksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "current", Type: field.TypeInt, Default: 0},
		{Name: "longest", Type: field.TypeInt, Default: 0},
		{Name: "last_active_date", Type: field.TypeString, Default: ""},
	}
	// StreaksTable holds the schema information for the "streaks" table.
	StreaksTable = &schema.Table{
		Name:       "streaks",
		Columns:    StreaksColumns,
		PrimaryKey: []*schema.Column{StreaksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streak_user_id",
				Unique:  false,
				Columns: []*schema.Column{StreaksColumns[1]},
			},
		},
	}
	// TutorSessionsColumns holds the columns for the "tutor_sessions" table.
	TutorSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "exam_domain", Type: field.TypeString, Default: "general"},
		{Name: "state", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TutorSessionsTable holds the schema information for the "tutor_sessions" table.
	TutorSessionsTable = &schema.Table{
		Name:       "tutor_sessions",
		Columns:    TutorSessionsColumns,
		PrimaryKey: []*schema.Column{TutorSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{TutorSessionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		FlashcardsTable,
		LlmRequestEventsTable,
		StreaksTable,
		TutorSessionsTable,
	}
)

func init() {
}
