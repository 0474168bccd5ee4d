package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prefrontal-labs/mindly-app/internal/tutor"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionLoadDefaultsWhenAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	state, err := repo.Load(ctx, "alice", "AWS Solutions Architect")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.UserID != "alice" {
		t.Errorf("UserID = %q, want %q", state.UserID, "alice")
	}
	if state.ExamDomain != "AWS Solutions Architect" {
		t.Errorf("ExamDomain = %q, want %q", state.ExamDomain, "AWS Solutions Architect")
	}
	if state.SessionCount != 0 {
		t.Errorf("SessionCount = %d, want 0", state.SessionCount)
	}
}

func TestSessionSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	state := tutor.DefaultState("bob", "networking")
	state.SessionCount = 3
	state.ConsecutiveSuccesses = 2
	state.Mastery("subnetting", now).Level = tutor.LevelDeveloping
	state.SetPending("What is a /24?", "subnetting")

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(ctx, "bob", "networking")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SessionCount != 3 {
		t.Errorf("SessionCount = %d, want 3", loaded.SessionCount)
	}
	if loaded.ConsecutiveSuccesses != 2 {
		t.Errorf("ConsecutiveSuccesses = %d, want 2", loaded.ConsecutiveSuccesses)
	}
	if got := loaded.ConceptMastery["subnetting"].Level; got != tutor.LevelDeveloping {
		t.Errorf("mastery level = %q, want %q", got, tutor.LevelDeveloping)
	}
	if loaded.PendingConcept != "subnetting" {
		t.Errorf("PendingConcept = %q, want %q", loaded.PendingConcept, "subnetting")
	}
}

func TestSessionSaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	state := tutor.DefaultState("carol", "biology")
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("first save: %v", err)
	}

	state.SessionCount = 7
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := repo.Load(ctx, "carol", "biology")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SessionCount != 7 {
		t.Errorf("SessionCount = %d, want 7", loaded.SessionCount)
	}
}

func TestSessionDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	state := tutor.DefaultState("dave", "history")
	state.SessionCount = 5
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "dave"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	loaded, err := repo.Load(ctx, "dave", "history")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SessionCount != 0 {
		t.Errorf("SessionCount after delete = %d, want fresh state", loaded.SessionCount)
	}
}

func TestMessageAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.MessageRepo()
	ctx := context.Background()

	for i := range 12 {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		err := repo.Append(ctx, ChatMessage{
			UserID:  "alice",
			Role:    role,
			Content: fmt.Sprintf("message %d", i),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	msgs, err := repo.Recent(ctx, "alice", 8)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(msgs) != 8 {
		t.Fatalf("expected 8 messages, got %d", len(msgs))
	}
	// Oldest first within the window.
	if msgs[0].Content != "message 4" {
		t.Errorf("first = %q, want %q", msgs[0].Content, "message 4")
	}
	if msgs[7].Content != "message 11" {
		t.Errorf("last = %q, want %q", msgs[7].Content, "message 11")
	}
}

func TestMessageRecentScopedToUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.MessageRepo()
	ctx := context.Background()

	_ = repo.Append(ctx, ChatMessage{UserID: "alice", Role: "user", Content: "hi"})
	_ = repo.Append(ctx, ChatMessage{UserID: "bob", Role: "user", Content: "hello"})

	msgs, err := repo.Recent(ctx, "alice", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Content != "hi" {
		t.Errorf("content = %q, want %q", msgs[0].Content, "hi")
	}
}

func TestFlashcardDueOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.FlashcardRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	cards := []Flashcard{
		{UserID: "alice", Concept: "dns", Front: "later", Back: "b", DueAt: now.Add(-1 * time.Hour)},
		{UserID: "alice", Concept: "dns", Front: "sooner", Back: "b", DueAt: now.Add(-2 * time.Hour)},
		{UserID: "alice", Concept: "dns", Front: "future", Back: "b", DueAt: now.Add(24 * time.Hour)},
	}
	for _, c := range cards {
		if _, err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	due, err := repo.Due(ctx, "alice", now, 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due cards, got %d", len(due))
	}
	if due[0].Front != "sooner" {
		t.Errorf("first due = %q, want %q", due[0].Front, "sooner")
	}
}

func TestFlashcardUpdateSchedule(t *testing.T) {
	s := openTestStore(t)
	repo := s.FlashcardRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	card, err := repo.Create(ctx, Flashcard{
		UserID: "alice", Concept: "dns", Front: "f", Back: "b", DueAt: now,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	card.EaseFactor = 2.6
	card.IntervalDays = 6
	card.Repetitions = 2
	card.DueAt = now.AddDate(0, 0, 6)
	card.LastReviewedAt = &now
	if err := repo.UpdateSchedule(ctx, *card); err != nil {
		t.Fatalf("update: %v", err)
	}

	due, err := repo.Due(ctx, "alice", now.AddDate(0, 0, 7), 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("expected 1 card, got %d", len(due))
	}
	if due[0].Repetitions != 2 {
		t.Errorf("repetitions = %d, want 2", due[0].Repetitions)
	}
	if due[0].IntervalDays != 6 {
		t.Errorf("interval = %d, want 6", due[0].IntervalDays)
	}
}

func TestStreakGetDefaultsWhenAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.StreakRepo()
	ctx := context.Background()

	data, err := repo.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if data.Current != 0 || data.Longest != 0 || data.LastActiveDate != "" {
		t.Errorf("expected zero streak, got %+v", data)
	}
}

func TestStreakSaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.StreakRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, StreakData{UserID: "alice", Current: 1, Longest: 1, LastActiveDate: "2026-08-29"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, StreakData{UserID: "alice", Current: 2, Longest: 2, LastActiveDate: "2026-08-30"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	data, err := repo.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if data.Current != 2 {
		t.Errorf("current = %d, want 2", data.Current)
	}
	if data.LastActiveDate != "2026-08-30" {
		t.Errorf("last active = %q, want %q", data.LastActiveDate, "2026-08-30")
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "classify", InputTokens: 100, OutputTokens: 5, LatencyMs: 300, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "assess", InputTokens: 200, OutputTokens: 50, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "tutor-reply", InputTokens: 800, OutputTokens: 400, LatencyMs: 2500, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "classify", InputTokens: 90, OutputTokens: 4, LatencyMs: 250, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "classify"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 classify events, got %d", len(filtered))
	}

	e, err := repo.GetLLMEvent(ctx, got[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "classify", InputTokens: 100, OutputTokens: 10, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "classify", InputTokens: 300, OutputTokens: 30, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "tutor-reply", InputTokens: 1000, OutputTokens: 500, LatencyMs: 3000, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	stats := make(map[string]LLMUsageStat, len(byPurpose))
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	if st := stats["classify"]; st.Calls != 2 || st.InputTokens != 400 || st.OutputTokens != 40 {
		t.Errorf("classify stats = %+v", st)
	}
	if st := stats["classify"]; st.AvgLatencyMs != 300 {
		t.Errorf("classify avg latency = %d, want 300", st.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]LLMModelUsage, len(byModel))
	for _, mu := range byModel {
		models[mu.Model] = mu
	}
	if mu := models["claude-sonnet-4-20250514"]; mu.Calls != 1 || mu.InputTokens != 1000 {
		t.Errorf("sonnet usage = %+v", mu)
	}
}
