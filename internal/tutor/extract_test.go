package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
)

func TestExtract_SkipsRepliesWithoutQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	e := NewExtractor(mock, DefaultCallConfig())

	got := e.Extract(context.Background(), "Good work. That covers buffers for today.")
	if got != (Extraction{}) {
		t.Errorf("Extract() = %+v, want empty", got)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("provider calls = %d, want 0 for reply without question mark", len(mock.Calls))
	}
}

func TestExtract_NilProvider(t *testing.T) {
	e := NewExtractor(nil, DefaultCallConfig())
	if got := e.Extract(context.Background(), "What is a buffer?"); got != (Extraction{}) {
		t.Errorf("Extract() = %+v, want empty", got)
	}
}

func TestExtract_ParsesQuestionAndConcept(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"Why does a buffer resist pH change?","concept":"buffer-solutions"}`),
	})
	e := NewExtractor(mock, DefaultCallConfig())

	got := e.Extract(context.Background(), "Nice. Now, why does a buffer resist pH change?")
	if got.Question != "Why does a buffer resist pH change?" {
		t.Errorf("question = %q", got.Question)
	}
	if got.Concept != "buffer-solutions" {
		t.Errorf("concept = %q", got.Concept)
	}
}

func TestExtract_NullFields(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":null,"concept":null}`),
	})
	e := NewExtractor(mock, DefaultCallConfig())

	if got := e.Extract(context.Background(), "Anything unclear so far?"); got != (Extraction{}) {
		t.Errorf("Extract() = %+v, want empty", got)
	}
}

func TestExtract_TruncatesLongReplies(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"q?","concept":"c"}`),
	})
	e := NewExtractor(mock, DefaultCallConfig())

	long := strings.Repeat("x", 2000) + "?"
	e.Extract(context.Background(), long)

	if len(mock.Calls) != 1 {
		t.Fatal("expected one provider call")
	}
	if got := len(mock.Calls[0].Messages[0].Content); got > 800 {
		t.Errorf("request content length = %d, want truncated window", got)
	}
}

func TestExtract_TruncationKeepsRuneBoundary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"q?","concept":"c"}`),
	})
	e := NewExtractor(mock, DefaultCallConfig())

	// Three-byte Devanagari runes straddle the byte cutoff.
	long := "क्या? " + strings.Repeat("ध", 400)
	e.Extract(context.Background(), long)

	if len(mock.Calls) != 1 {
		t.Fatal("expected one provider call")
	}
	got := mock.Calls[0].Messages[0].Content
	if !utf8.ValidString(got) {
		t.Error("request content contains a split rune")
	}
	// A split rune would surface as a \x escape once quoted.
	if strings.Contains(got, `\x`) {
		t.Errorf("request content quotes a split rune: %s", got)
	}
}

func TestExtract_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider()
	e := NewExtractor(mock, DefaultCallConfig())

	if got := e.Extract(context.Background(), "What next?"); got != (Extraction{}) {
		t.Errorf("Extract() = %+v, want empty on provider failure", got)
	}
}
