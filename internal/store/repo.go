package store

import (
	"context"
	"time"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
	"github.com/prefrontal-labs/mindly-app/internal/tutor"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // filter by purpose label ("" = all)
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}

// SessionRepo manages per-user tutoring state. One row per user.
type SessionRepo interface {
	// Load returns the user's state, or a fresh default state if the
	// user has no session yet.
	Load(ctx context.Context, userID, examDomain string) (*tutor.StudentState, error)

	// Save upserts the user's state.
	Save(ctx context.Context, state *tutor.StudentState) error

	// Delete removes the user's session state.
	Delete(ctx context.Context, userID string) error
}

// ChatMessage is one stored turn of the transcript.
type ChatMessage struct {
	ID        int
	UserID    string
	Role      string // "user" or "assistant"
	Content   string
	Action    string
	CreatedAt time.Time
}

// MessageRepo manages the chat transcript.
type MessageRepo interface {
	// Append stores a message at the end of the transcript.
	Append(ctx context.Context, msg ChatMessage) error

	// Recent returns the last n messages, oldest first.
	Recent(ctx context.Context, userID string, n int) ([]ChatMessage, error)

	// Clear removes the user's transcript.
	Clear(ctx context.Context, userID string) error
}

// Flashcard is a spaced-repetition card with its SM-2 scheduling state.
type Flashcard struct {
	ID             int
	UserID         string
	Concept        string
	Front          string
	Back           string
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	DueAt          time.Time
	LastReviewedAt *time.Time
}

// FlashcardRepo manages spaced-repetition cards.
type FlashcardRepo interface {
	// Create adds a new card due immediately.
	Create(ctx context.Context, card Flashcard) (*Flashcard, error)

	// Due returns cards with DueAt <= now, soonest first.
	Due(ctx context.Context, userID string, now time.Time, limit int) ([]Flashcard, error)

	// UpdateSchedule persists the card's scheduling state after a review.
	UpdateSchedule(ctx context.Context, card Flashcard) error

	// CountByConcept returns the number of cards per concept.
	CountByConcept(ctx context.Context, userID string) (map[string]int, error)
}

// StreakData is a user's daily study streak.
type StreakData struct {
	UserID         string
	Current        int
	Longest        int
	LastActiveDate string // YYYY-MM-DD, "" if never active
}

// StreakRepo manages daily study streaks.
type StreakRepo interface {
	// Get returns the user's streak, zero-valued if absent.
	Get(ctx context.Context, userID string) (*StreakData, error)

	// Save upserts the user's streak.
	Save(ctx context.Context, data StreakData) error
}

// LLMRequestEventData captures the data for a single LLM request event.
// It aliases llm.Event so llmEventRepo doubles as the provider's
// llm.EventSink without a conversion layer.
type LLMRequestEventData = llm.Event

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates usage per purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMEventRepo provides append and query access to LLM request events.
type LLMEventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
