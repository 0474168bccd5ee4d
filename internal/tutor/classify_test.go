package tutor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
)

func TestClassify_PatternRules(t *testing.T) {
	tests := []struct {
		name string
		in   ClassifyInput
		want MessageType
	}{
		{"first message is a greeting", ClassifyInput{Message: "what is osmosis", HistoryLen: 0}, MessageGreeting},
		{"hello", ClassifyInput{Message: "Hello!", HistoryLen: 4}, MessageGreeting},
		{"lets start", ClassifyInput{Message: "let's start", HistoryLen: 4}, MessageGreeting},
		{"good morning", ClassifyInput{Message: "good morning", HistoryLen: 2}, MessageGreeting},
		{"rating while awaiting", ClassifyInput{Message: "4", HistoryLen: 6, AwaitingRating: true}, MessageConfidenceRating},
		{"rating out of range", ClassifyInput{Message: "7", HistoryLen: 6, AwaitingRating: true, PendingQuestion: "q"}, MessageAnswer},
		{"digit without awaiting falls through", ClassifyInput{Message: "4", HistoryLen: 6, PendingQuestion: "q"}, MessageAnswer},
		{"claimed knowledge", ClassifyInput{Message: "I know this already", HistoryLen: 6}, MessageClaimedKnowledge},
		{"studied claim", ClassifyInput{Message: "i studied this last year", HistoryLen: 6}, MessageClaimedKnowledge},
		{"confusion", ClassifyInput{Message: "I'm confused about this", HistoryLen: 6}, MessageConfusion},
		{"dont understand", ClassifyInput{Message: "I don't understand the second part", HistoryLen: 6}, MessageConfusion},
		{"this is hard", ClassifyInput{Message: "ugh this is hard", HistoryLen: 6}, MessageConfusion},
		{"question word", ClassifyInput{Message: "Why does entropy increase?", HistoryLen: 6}, MessageQuestion},
		{"explain request", ClassifyInput{Message: "explain Le Chatelier's principle", HistoryLen: 6}, MessageQuestion},
		{"ambiguous with pending question", ClassifyInput{Message: "mitochondria", HistoryLen: 6, PendingQuestion: "What organelle produces ATP?"}, MessageAnswer},
		{"ambiguous without pending question", ClassifyInput{Message: "ok cool", HistoryLen: 6}, MessageGeneral},
	}

	// nil provider: ambiguous messages resolve deterministically.
	c := NewClassifier(nil, DefaultCallConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(context.Background(), tt.in)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.in.Message, got, tt.want)
			}
		})
	}
}

func TestClassify_GenerativeFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"type":"question"}`)})
	c := NewClassifier(mock, DefaultCallConfig())

	got := c.Classify(context.Background(), ClassifyInput{Message: "hmm that thing from before", HistoryLen: 6})
	if got != MessageQuestion {
		t.Errorf("Classify() = %v, want %v", got, MessageQuestion)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(mock.Calls))
	}
	if mock.Calls[0].Schema == nil {
		t.Error("expected a schema-constrained request")
	}
}

func TestClassify_GenerativeFallbackFailure(t *testing.T) {
	// An empty mock queue returns ErrProviderUnavailable.
	mock := llm.NewMockProvider()
	c := NewClassifier(mock, DefaultCallConfig())

	got := c.Classify(context.Background(), ClassifyInput{
		Message:         "42",
		HistoryLen:      6,
		PendingQuestion: "What is 6 x 7?",
	})
	if got != MessageAnswer {
		t.Errorf("Classify() = %v, want %v after provider failure", got, MessageAnswer)
	}
}

func TestClassify_UnexpectedLabelDefaultsToGeneral(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"type":"poetry"}`)})
	c := NewClassifier(mock, DefaultCallConfig())

	got := c.Classify(context.Background(), ClassifyInput{Message: "something ambiguous", HistoryLen: 6})
	if got != MessageGeneral {
		t.Errorf("Classify() = %v, want %v", got, MessageGeneral)
	}
}

func TestClassify_PatternRulesSkipProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClassifier(mock, DefaultCallConfig())

	c.Classify(context.Background(), ClassifyInput{Message: "why though?", HistoryLen: 6})
	if len(mock.Calls) != 0 {
		t.Errorf("provider calls = %d, want 0 for pattern-matched message", len(mock.Calls))
	}
}
