package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
)

func testEngine(provider llm.Provider) *Engine {
	return NewEngine(provider, DefaultCallConfig(), WithClock(func() time.Time {
		return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	}))
}

func TestRunTurn_GreetingNeedsNoProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	e := testEngine(mock)

	state := DefaultState("u1", "NEET")
	res := e.RunTurn(context.Background(), TurnInput{Message: "hey!", State: state, HistoryLen: 0})

	if res.MessageType != MessageGreeting {
		t.Errorf("message type = %v, want %v", res.MessageType, MessageGreeting)
	}
	if res.Action != ActionWarmupRetrieval {
		t.Errorf("action = %v, want %v", res.Action, ActionWarmupRetrieval)
	}
	if res.Assessment != nil {
		t.Errorf("assessment = %+v, want nil", res.Assessment)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("provider calls = %d, want 0", len(mock.Calls))
	}
	if res.State != state {
		t.Error("result state is not the caller's state")
	}
	if !strings.Contains(res.SystemPrompt, "WARM-UP RETRIEVAL") {
		t.Error("system prompt missing warmup instruction")
	}
}

func TestRunTurn_AnswerIsAssessed(t *testing.T) {
	mock := llm.NewMockProvider(
		// Ambiguous message: classifier fallback call.
		llm.MockResponse{Content: json.RawMessage(`{"type":"answer"}`)},
		// Assessment call.
		llm.MockResponse{Content: json.RawMessage(`{"score":3,"isCorrect":true,"misconception":null,"feedback":"good"}`)},
	)
	e := testEngine(mock)

	state := DefaultState("u1", "NEET")
	state.MessagesInSession = 5
	state.SetPending("What organelle produces ATP?", "cell-biology")

	res := e.RunTurn(context.Background(), TurnInput{Message: "mitochondria", State: state, HistoryLen: 6})

	if res.MessageType != MessageAnswer {
		t.Fatalf("message type = %v, want %v", res.MessageType, MessageAnswer)
	}
	if res.Assessment == nil || !res.Assessment.IsCorrect {
		t.Fatalf("assessment = %+v, want correct", res.Assessment)
	}
	if res.Action != ActionInterleavedPractice {
		t.Errorf("action = %v, want %v", res.Action, ActionInterleavedPractice)
	}
	if got := state.ConceptMastery["cell-biology"].Level; got != LevelFragile {
		t.Errorf("mastery level = %v, want %v", got, LevelFragile)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("provider calls = %d, want 2", len(mock.Calls))
	}
}

func TestRunTurn_NoAssessmentWithoutPendingQuestion(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"type":"answer"}`)},
	)
	e := testEngine(mock)

	state := DefaultState("u1", "NEET")
	state.MessagesInSession = 5

	res := e.RunTurn(context.Background(), TurnInput{Message: "mitochondria", State: state, HistoryLen: 6})

	if res.Assessment != nil {
		t.Errorf("assessment = %+v, want nil with no pending question", res.Assessment)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("provider calls = %d, want 1 (classify only)", len(mock.Calls))
	}
}

func TestRunTurn_NilStateGetsDefault(t *testing.T) {
	e := testEngine(nil)
	res := e.RunTurn(context.Background(), TurnInput{Message: "hi", State: nil})
	if res.State == nil {
		t.Fatal("result state is nil")
	}
	if res.State.ExamDomain != "general" {
		t.Errorf("exam domain = %q, want general", res.State.ExamDomain)
	}
}

func TestRunTurn_ContextFlowsIntoPrompt(t *testing.T) {
	e := testEngine(nil)
	state := DefaultState("u1", "CAT")

	res := e.RunTurn(context.Background(), TurnInput{
		Message:    "hello",
		State:      state,
		HistoryLen: 0,
		Context:    &StudentContext{StudentName: "Meera", ExamName: "CAT", CurrentStreak: 12},
	})

	if !strings.Contains(res.SystemPrompt, "Meera") {
		t.Error("system prompt missing student name from context")
	}
	if !strings.Contains(res.SystemPrompt, "12 day") {
		t.Error("system prompt missing streak from context")
	}
}

func TestExtractPending_RecordsQuestionOnState(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"What is Kirchhoff's current law?","concept":"circuits"}`),
	})
	e := testEngine(mock)
	state := DefaultState("u1", "JEE")

	ext := e.ExtractPending(context.Background(), state, "Let's switch gears. What is Kirchhoff's current law?")

	if ext.Question == "" {
		t.Fatal("extraction empty")
	}
	if state.PendingQuestion != "What is Kirchhoff's current law?" {
		t.Errorf("pending question = %q", state.PendingQuestion)
	}
	if state.PendingConcept != "circuits" {
		t.Errorf("pending concept = %q", state.PendingConcept)
	}
	if len(state.LastConceptsTested) != 1 || state.LastConceptsTested[0] != "circuits" {
		t.Errorf("recent concepts = %v", state.LastConceptsTested)
	}
}

func TestExtractPending_NoQuestionLeavesStateUntouched(t *testing.T) {
	e := testEngine(nil)
	state := DefaultState("u1", "JEE")
	state.SetPending("old question?", "old-concept")

	e.ExtractPending(context.Background(), state, "Great session today. See you tomorrow.")

	if state.PendingQuestion != "old question?" {
		t.Errorf("pending question = %q, want unchanged", state.PendingQuestion)
	}
}
