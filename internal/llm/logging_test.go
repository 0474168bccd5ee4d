package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// captureSink records appended events in memory.
type captureSink struct {
	events []Event
	err    error
}

func (s *captureSink) AppendLLMRequest(_ context.Context, ev Event) error {
	s.events = append(s.events, ev)
	return s.err
}

func TestLogging_RecordsSuccessfulRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"type":"answer"}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 5},
		},
	)
	sink := &captureSink{}
	p := WithLogging(mock, sink)

	ctx := WithPurpose(context.Background(), "classify")
	if _, err := p.Generate(ctx, Request{System: "classify this"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("recorded events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if !ev.Success {
		t.Errorf("Success = false, want true")
	}
	if ev.Purpose != "classify" {
		t.Errorf("Purpose = %q, want %q", ev.Purpose, "classify")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d, want 12/5", ev.InputTokens, ev.OutputTokens)
	}
	if ev.ResponseBody != `{"type":"answer"}` {
		t.Errorf("ResponseBody = %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	sink := &captureSink{}
	p := WithLogging(mock, sink)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(sink.events) != 1 {
		t.Fatalf("recorded events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Success {
		t.Errorf("Success = true, want false")
	}
	if ev.ErrorMessage == "" {
		t.Errorf("ErrorMessage is empty")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("Purpose = %q, want %q", ev.Purpose, "unknown")
	}
}

func TestLogging_SinkFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	sink := &captureSink{err: errors.New("disk full")}
	p := WithLogging(mock, sink)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}
