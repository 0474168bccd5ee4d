// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prefrontal-labs/mindly-app/ent/chatmessage"
	"github.com/prefrontal-labs/mindly-app/ent/flashcard"
	"github.com/prefrontal-labs/mindly-app/ent/llmrequestevent"
	"github.com/prefrontal-labs/mindly-app/ent/schema"
	"github.com/prefrontal-labs/mindly-app/ent/streak"
	"github.com/prefrontal-labs/mindly-app/ent/tutorsession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescAction is the schema descriptor for action field.
	chatmessageDescAction := chatmessageFields[3].Descriptor()
	// chatmessage.DefaultAction holds the default value on creation for the action field.
	chatmessage.DefaultAction = chatmessageDescAction.Default.(string)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	flashcardFields := schema.Flashcard{}.Fields()
	_ = flashcardFields
	// flashcardDescEaseFactor is the schema descriptor for ease_factor field.
	flashcardDescEaseFactor := flashcardFields[4].Descriptor()
	// flashcard.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	flashcard.DefaultEaseFactor = flashcardDescEaseFactor.Default.(float64)
	// flashcardDescIntervalDays is the schema descriptor for interval_days field.
	flashcardDescIntervalDays := flashcardFields[5].Descriptor()
	// flashcard.DefaultIntervalDays holds the default value on creation for the interval_days field.
	flashcard.DefaultIntervalDays = flashcardDescIntervalDays.Default.(int)
	// flashcardDescRepetitions is the schema descriptor for repetitions field.
	flashcardDescRepetitions := flashcardFields[6].Descriptor()
	// flashcard.DefaultRepetitions holds the default value on creation for the repetitions field.
	flashcard.DefaultRepetitions = flashcardDescRepetitions.Default.(int)
	// flashcardDescDueAt is the schema descriptor for due_at field.
	flashcardDescDueAt := flashcardFields[7].Descriptor()
	// flashcard.DefaultDueAt holds the default value on creation for the due_at field.
	flashcard.DefaultDueAt = flashcardDescDueAt.Default.(func() time.Time)
	// flashcardDescCreatedAt is the schema descriptor for created_at field.
	flashcardDescCreatedAt := flashcardFields[9].Descriptor()
	// flashcard.DefaultCreatedAt holds the default value on creation for the created_at field.
	flashcard.DefaultCreatedAt = flashcardDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	streakFields := schema.Streak{}.Fields()
	_ = streakFields
	// streakDescCurrent is the schema descriptor for current field.
	streakDescCurrent := streakFields[1].Descriptor()
	// streak.DefaultCurrent holds the default value on creation for the current field.
	streak.DefaultCurrent = streakDescCurrent.Default.(int)
	// streakDescLongest is the schema descriptor for longest field.
	streakDescLongest := streakFields[2].Descriptor()
	// streak.DefaultLongest holds the default value on creation for the longest field.
	streak.DefaultLongest = streakDescLongest.Default.(int)
	// streakDescLastActiveDate is the schema descriptor for last_active_date field.
	streakDescLastActiveDate := streakFields[3].Descriptor()
	// streak.DefaultLastActiveDate holds the default value on creation for the last_active_date field.
	streak.DefaultLastActiveDate = streakDescLastActiveDate.Default.(string)
	tutorsessionFields := schema.TutorSession{}.Fields()
	_ = tutorsessionFields
	// tutorsessionDescExamDomain is the schema descriptor for exam_domain field.
	tutorsessionDescExamDomain := tutorsessionFields[1].Descriptor()
	// tutorsession.DefaultExamDomain holds the default value on creation for the exam_domain field.
	tutorsession.DefaultExamDomain = tutorsessionDescExamDomain.Default.(string)
	// tutorsessionDescCreatedAt is the schema descriptor for created_at field.
	tutorsessionDescCreatedAt := tutorsessionFields[3].Descriptor()
	// tutorsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	tutorsession.DefaultCreatedAt = tutorsessionDescCreatedAt.Default.(func() time.Time)
	// tutorsessionDescUpdatedAt is the schema descriptor for updated_at field.
	tutorsessionDescUpdatedAt := tutorsessionFields[4].Descriptor()
	// tutorsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tutorsession.DefaultUpdatedAt = tutorsessionDescUpdatedAt.Default.(func() time.Time)
	// tutorsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tutorsession.UpdateDefaultUpdatedAt = tutorsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
