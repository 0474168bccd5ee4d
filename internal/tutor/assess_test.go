package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
)

func TestAssess_NoPendingQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	a := NewAssessor(mock, DefaultCallConfig())

	if got := a.Assess(context.Background(), AssessInput{Answer: "42"}); got != nil {
		t.Errorf("Assess() = %+v, want nil without a pending question", got)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("provider calls = %d, want 0", len(mock.Calls))
	}
}

func TestAssess_NilProvider(t *testing.T) {
	a := NewAssessor(nil, DefaultCallConfig())
	if got := a.Assess(context.Background(), AssessInput{Question: "q", Answer: "a"}); got != nil {
		t.Errorf("Assess() = %+v, want nil with nil provider", got)
	}
}

func TestAssess_ParsesResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":1,"isCorrect":false,"misconception":"treats resistance as constant","feedback":"partially there"}`),
	})
	a := NewAssessor(mock, DefaultCallConfig())

	got := a.Assess(context.Background(), AssessInput{
		Question:   "What happens to current when voltage doubles?",
		Concept:    "ohms-law",
		ExamDomain: "JEE",
		HintsGiven: 1,
		Answer:     "it stays the same",
	})

	if got == nil {
		t.Fatal("Assess() = nil, want result")
	}
	if got.Score != 1 || got.IsCorrect {
		t.Errorf("result = %+v", got)
	}
	if got.Misconception != "treats resistance as constant" {
		t.Errorf("misconception = %q", got.Misconception)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Error("expected a schema-constrained request")
	}
	if req.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", req.Temperature)
	}
	body := req.Messages[0].Content
	for _, want := range []string{"ohms-law", "JEE", "Hints already given: 1"} {
		if !strings.Contains(body, want) {
			t.Errorf("request missing %q", want)
		}
	}
}

func TestAssess_NullMisconception(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":3,"isCorrect":true,"misconception":null,"feedback":"solid"}`),
	})
	a := NewAssessor(mock, DefaultCallConfig())

	got := a.Assess(context.Background(), AssessInput{Question: "q", Answer: "a"})
	if got == nil {
		t.Fatal("Assess() = nil, want result")
	}
	if got.Misconception != "" {
		t.Errorf("misconception = %q, want empty", got.Misconception)
	}
}

func TestAssess_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails
	a := NewAssessor(mock, DefaultCallConfig())

	if got := a.Assess(context.Background(), AssessInput{Question: "q", Answer: "a"}); got != nil {
		t.Errorf("Assess() = %+v, want nil on provider failure", got)
	}
}

func TestAssess_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	a := NewAssessor(mock, DefaultCallConfig())

	if got := a.Assess(context.Background(), AssessInput{Question: "q", Answer: "a"}); got != nil {
		t.Errorf("Assess() = %+v, want nil on malformed response", got)
	}
}
