// Package app wires the tutoring pipeline, persistence, and the terminal
// chat interface into a running application.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
	"github.com/prefrontal-labs/mindly-app/internal/progress"
	"github.com/prefrontal-labs/mindly-app/internal/spacedrep"
	"github.com/prefrontal-labs/mindly-app/internal/store"
	"github.com/prefrontal-labs/mindly-app/internal/tutor"
)

const (
	// historyWindow is how many transcript messages are replayed into
	// each completion request.
	historyWindow = 8

	// replyMaxTokens bounds the streamed tutor reply.
	replyMaxTokens = 1024

	// replyTemperature keeps the tutor conversational without drifting
	// off the action instruction.
	replyTemperature = 0.7
)

// Profile identifies the student and their exam target.
type Profile struct {
	UserID      string
	StudentName string
	ExamDomain  string
	ExamDate    *time.Time
}

// Service runs complete chat turns against the store and the LLM.
type Service struct {
	sessions   store.SessionRepo
	messages   store.MessageRepo
	streaks    store.StreakRepo
	flashcards store.FlashcardRepo
	provider   llm.Provider
	engine     *tutor.Engine
	profile    Profile
	now        func() time.Time
}

// NewService creates a Service. provider is used for the streamed tutor
// reply; the engine carries its own provider for the pipeline stages.
func NewService(s *store.Store, provider llm.Provider, engine *tutor.Engine, profile Profile) *Service {
	return &Service{
		sessions:   s.SessionRepo(),
		messages:   s.MessageRepo(),
		streaks:    s.StreakRepo(),
		flashcards: s.FlashcardRepo(),
		provider:   provider,
		engine:     engine,
		profile:    profile,
		now:        time.Now,
	}
}

// TurnOutcome reports what a completed chat turn did.
type TurnOutcome struct {
	Reply       string
	Action      tutor.TutorAction
	Phase       tutor.SessionPhase
	MessageType tutor.MessageType
	Assessment  *tutor.AssessmentResult
}

// History returns the most recent transcript messages, oldest first.
func (s *Service) History(ctx context.Context, n int) ([]store.ChatMessage, error) {
	return s.messages.Recent(ctx, s.profile.UserID, n)
}

// Turn runs one full chat turn: pipeline, streamed reply, then
// persistence. Deltas of the tutor reply are delivered through onDelta
// as they arrive.
func (s *Service) Turn(ctx context.Context, message string, onDelta func(string) error) (*TurnOutcome, error) {
	state, err := s.sessions.Load(ctx, s.profile.UserID, s.profile.ExamDomain)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	history, err := s.messages.Recent(ctx, s.profile.UserID, historyWindow)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	streak, err := s.streaks.Get(ctx, s.profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}

	// The planner clears the pending question once it is answered; keep
	// it for flashcard capture below.
	missedQuestion := state.PendingQuestion
	missedConcept := state.PendingConcept

	res := s.engine.RunTurn(ctx, tutor.TurnInput{
		Message:    message,
		State:      state,
		HistoryLen: len(history),
		Context:    s.studentContext(streak.Current),
	})

	// Mint a card only once the question is resolved. During the hint
	// phase the same question stays pending and would otherwise produce
	// a duplicate card per wrong attempt.
	questionResolved := state.PendingQuestion != missedQuestion

	if err := s.messages.Append(ctx, store.ChatMessage{
		UserID:  s.profile.UserID,
		Role:    "user",
		Content: message,
	}); err != nil {
		return nil, fmt.Errorf("append user message: %w", err)
	}

	req := llm.Request{
		System:      res.SystemPrompt,
		Messages:    buildReplyMessages(history, message),
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	}

	resp, err := llm.StreamText(llm.WithPurpose(ctx, tutor.PurposeTutor), s.provider, req, onDelta)
	if err != nil {
		// The turn's state changes are still worth keeping: the planner
		// already consumed the student's message.
		s.persistTurn(state, "", res.Action)
		return nil, fmt.Errorf("tutor reply: %w", err)
	}

	reply := resp.Text()
	s.persistTurn(state, reply, res.Action)
	s.advanceStreak(*streak)
	if questionResolved {
		s.captureFlashcard(res.Assessment, missedQuestion, missedConcept)
	}

	return &TurnOutcome{
		Reply:       reply,
		Action:      res.Action,
		Phase:       state.SessionPhase,
		MessageType: res.MessageType,
		Assessment:  res.Assessment,
	}, nil
}

// persistTurn runs the post-stream bookkeeping: question extraction,
// transcript append, and state save. It uses a background context so a
// cancelled stream cannot lose the turn's mastery updates.
func (s *Service) persistTurn(state *tutor.StudentState, reply string, action tutor.TutorAction) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if reply != "" {
		s.engine.ExtractPending(ctx, state, reply)

		if err := s.messages.Append(ctx, store.ChatMessage{
			UserID:  s.profile.UserID,
			Role:    "assistant",
			Content: reply,
			Action:  string(action),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to store tutor reply: %v\n", err)
		}
	}

	if err := s.sessions.Save(ctx, state); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save session state: %v\n", err)
	}
}

// captureFlashcard turns a missed question into a spaced-repetition card
// so it resurfaces in `mindly review`.
func (s *Service) captureFlashcard(assessment *tutor.AssessmentResult, question, concept string) {
	if assessment == nil || assessment.IsCorrect || question == "" || assessment.Feedback == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	card := spacedrep.NewCard(s.now())
	if _, err := s.flashcards.Create(ctx, store.Flashcard{
		UserID:       s.profile.UserID,
		Concept:      concept,
		Front:        question,
		Back:         assessment.Feedback,
		EaseFactor:   card.EaseFactor,
		IntervalDays: card.IntervalDays,
		Repetitions:  card.Repetitions,
		DueAt:        card.DueAt,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to store flashcard: %v\n", err)
	}
}

func (s *Service) advanceStreak(streak store.StreakData) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	next := progress.Advance(progress.Streak{
		Current:        streak.Current,
		Longest:        streak.Longest,
		LastActiveDate: streak.LastActiveDate,
	}, s.now())

	if err := s.streaks.Save(ctx, store.StreakData{
		UserID:         s.profile.UserID,
		Current:        next.Current,
		Longest:        next.Longest,
		LastActiveDate: next.LastActiveDate,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save streak: %v\n", err)
	}
}

func (s *Service) studentContext(currentStreak int) *tutor.StudentContext {
	sc := &tutor.StudentContext{
		StudentName:   s.profile.StudentName,
		ExamName:      s.profile.ExamDomain,
		CurrentStreak: currentStreak,
	}
	if s.profile.ExamDate != nil {
		days := int(time.Until(*s.profile.ExamDate).Hours() / 24)
		sc.DaysToExam = &days
	}
	return sc
}

func buildReplyMessages(history []store.ChatMessage, message string) []llm.Message {
	out := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	out = append(out, llm.Message{Role: llm.RoleUser, Content: message})
	return out
}
