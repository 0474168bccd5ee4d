package app

import (
	"time"

	"github.com/prefrontal-labs/mindly-app/internal/store"
)

// historyLoadedMsg is sent when the stored transcript has been loaded.
type historyLoadedMsg struct {
	Messages []store.ChatMessage
	Streak   int
	Err      error
}

// streamDeltaMsg carries one fragment of the streamed tutor reply.
type streamDeltaMsg struct {
	Delta string
}

// turnDoneMsg is sent when a chat turn has fully completed.
type turnDoneMsg struct {
	Outcome *TurnOutcome
}

// turnFailedMsg is sent when a chat turn failed.
type turnFailedMsg struct {
	Err error
}

// spinnerTickMsg animates the thinking indicator while the first delta
// is pending.
type spinnerTickMsg time.Time
