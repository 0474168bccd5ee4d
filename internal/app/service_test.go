package app

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
	"github.com/prefrontal-labs/mindly-app/internal/store"
	"github.com/prefrontal-labs/mindly-app/internal/tutor"
)

type fakeSessionRepo struct {
	state *tutor.StudentState
	saves int
}

func (r *fakeSessionRepo) Load(_ context.Context, _, _ string) (*tutor.StudentState, error) {
	return r.state, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, _ *tutor.StudentState) error {
	r.saves++
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeMessageRepo struct {
	appended []store.ChatMessage
}

func (r *fakeMessageRepo) Append(_ context.Context, msg store.ChatMessage) error {
	r.appended = append(r.appended, msg)
	return nil
}

func (r *fakeMessageRepo) Recent(_ context.Context, _ string, _ int) ([]store.ChatMessage, error) {
	return []store.ChatMessage{{Role: "assistant", Content: "Define entropy"}}, nil
}

func (r *fakeMessageRepo) Clear(_ context.Context, _ string) error { return nil }

type fakeStreakRepo struct{}

func (r *fakeStreakRepo) Get(_ context.Context, userID string) (*store.StreakData, error) {
	return &store.StreakData{UserID: userID}, nil
}

func (r *fakeStreakRepo) Save(_ context.Context, _ store.StreakData) error { return nil }

type fakeFlashcardRepo struct {
	created []store.Flashcard
}

func (r *fakeFlashcardRepo) Create(_ context.Context, card store.Flashcard) (*store.Flashcard, error) {
	r.created = append(r.created, card)
	return &card, nil
}

func (r *fakeFlashcardRepo) Due(_ context.Context, _ string, _ time.Time, _ int) ([]store.Flashcard, error) {
	return nil, nil
}

func (r *fakeFlashcardRepo) UpdateSchedule(_ context.Context, _ store.Flashcard) error {
	return nil
}

func (r *fakeFlashcardRepo) CountByConcept(_ context.Context, _ string) (map[string]int, error) {
	return map[string]int{}, nil
}

func wrongVerdict() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(
		`{"score":0,"isCorrect":false,"misconception":null,"feedback":"Entropy measures disorder, not heat."}`,
	)}
}

func answerLabel() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{"type":"answer"}`)}
}

func hintReply(text string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(text)}
}

func TestTurn_MintsOneCardPerMissedQuestion(t *testing.T) {
	state := tutor.DefaultState("u1", "NEET")
	state.MessagesInSession = 5
	state.SetPending("Define entropy", "entropy")

	// One classify plus one assess call per wrong attempt.
	engineProvider := llm.NewMockProvider(
		answerLabel(), wrongVerdict(),
		answerLabel(), wrongVerdict(),
		answerLabel(), wrongVerdict(),
	)
	// Replies carry no question mark so no new question is extracted.
	replyProvider := llm.NewMockProvider(
		hintReply("Think about microstates."),
		hintReply("Think about how many arrangements exist."),
		hintReply("Let us step back to the basics of disorder."),
	)

	sessions := &fakeSessionRepo{state: state}
	flashcards := &fakeFlashcardRepo{}
	svc := &Service{
		sessions:   sessions,
		messages:   &fakeMessageRepo{},
		streaks:    &fakeStreakRepo{},
		flashcards: flashcards,
		provider:   replyProvider,
		engine:     tutor.NewEngine(engineProvider, tutor.DefaultCallConfig()),
		profile:    Profile{UserID: "u1", ExamDomain: "NEET"},
		now:        time.Now,
	}

	discard := func(string) error { return nil }

	// Two wrong attempts stay in the hint phase: the question is still
	// pending, so no card yet.
	for i := 0; i < 2; i++ {
		if _, err := svc.Turn(context.Background(), "entropy is heat", discard); err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
	}
	if len(flashcards.created) != 0 {
		t.Fatalf("cards after hint phase = %d, want 0", len(flashcards.created))
	}

	// The third wrong attempt resolves the question and mints the card.
	out, err := svc.Turn(context.Background(), "entropy is heat", discard)
	if err != nil {
		t.Fatalf("turn 3: %v", err)
	}
	if out.Action != tutor.ActionScaffoldBack {
		t.Fatalf("action = %v, want %v", out.Action, tutor.ActionScaffoldBack)
	}
	if len(flashcards.created) != 1 {
		t.Fatalf("cards = %d, want 1", len(flashcards.created))
	}

	card := flashcards.created[0]
	if card.Front != "Define entropy" {
		t.Errorf("card front = %q, want the missed question", card.Front)
	}
	if card.Concept != "entropy" {
		t.Errorf("card concept = %q, want %q", card.Concept, "entropy")
	}
	if card.Back != "Entropy measures disorder, not heat." {
		t.Errorf("card back = %q, want the assessor feedback", card.Back)
	}
	if sessions.saves != 3 {
		t.Errorf("state saves = %d, want 3", sessions.saves)
	}
}

func TestTurn_CorrectAnswerMintsNoCard(t *testing.T) {
	state := tutor.DefaultState("u1", "NEET")
	state.MessagesInSession = 5
	state.SetPending("Define entropy", "entropy")

	engineProvider := llm.NewMockProvider(
		answerLabel(),
		llm.MockResponse{Content: json.RawMessage(
			`{"score":3,"isCorrect":true,"misconception":null,"feedback":"Exactly right."}`,
		)},
	)
	replyProvider := llm.NewMockProvider(hintReply("Well done."))

	flashcards := &fakeFlashcardRepo{}
	svc := &Service{
		sessions:   &fakeSessionRepo{state: state},
		messages:   &fakeMessageRepo{},
		streaks:    &fakeStreakRepo{},
		flashcards: flashcards,
		provider:   replyProvider,
		engine:     tutor.NewEngine(engineProvider, tutor.DefaultCallConfig()),
		profile:    Profile{UserID: "u1", ExamDomain: "NEET"},
		now:        time.Now,
	}

	if _, err := svc.Turn(context.Background(), "a measure of disorder", func(string) error { return nil }); err != nil {
		t.Fatalf("turn: %v", err)
	}
	if len(flashcards.created) != 0 {
		t.Fatalf("cards = %d, want 0 after a correct answer", len(flashcards.created))
	}
}
