// Package tutor implements the adaptive tutoring decision engine: a
// four-stage pipeline run once per chat message.
//
// Classifier -> (conditionally) Assessor -> Planner -> Prompt Compiler.
//
// Only the first two stages perform I/O (bounded generative calls that
// degrade to deterministic defaults); the planner and compiler are pure.
// The engine holds no cross-request state: one pipeline invocation per
// turn, no locking inside.
package tutor

import (
	"context"
	"time"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
)

// TurnInput is everything the pipeline needs for one chat turn.
type TurnInput struct {
	Message    string
	State      *StudentState
	HistoryLen int
	Context    *StudentContext // optional
}

// TurnResult is the pipeline's output. State is the same pointer passed
// in, mutated by the planner; the caller persists it.
type TurnResult struct {
	State        *StudentState
	SystemPrompt string
	Action       TutorAction
	MessageType  MessageType
	Assessment   *AssessmentResult // nil when no assessment happened
}

// Engine wires the four pipeline stages together.
type Engine struct {
	classifier *Classifier
	assessor   *Assessor
	extractor  *Extractor
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine backed by the given provider. provider may
// be nil: classification then relies on pattern rules alone and answers
// are never assessed, leaving a degraded but functional tutor.
func NewEngine(provider llm.Provider, cfg CallConfig, opts ...Option) *Engine {
	e := &Engine{
		classifier: NewClassifier(provider, cfg),
		assessor:   NewAssessor(provider, cfg),
		extractor:  NewExtractor(provider, cfg),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunTurn executes the pipeline for one message. It never returns an
// error: every failure mode inside the pipeline resolves to a
// deterministic fallback, degrading the tutoring rather than crashing.
func (e *Engine) RunTurn(ctx context.Context, in TurnInput) TurnResult {
	now := e.now()
	state := in.State
	if state == nil {
		state = DefaultState("", "")
	}

	msgType := e.classifier.Classify(ctx, ClassifyInput{
		Message:         in.Message,
		HistoryLen:      in.HistoryLen,
		PendingQuestion: state.PendingQuestion,
		AwaitingRating:  state.AwaitingConfidenceRating,
	})

	var assessment *AssessmentResult
	if msgType == MessageAnswer && state.PendingQuestion != "" {
		assessment = e.assessor.Assess(ctx, AssessInput{
			Question:   state.PendingQuestion,
			Concept:    state.PendingConcept,
			ExamDomain: state.ExamDomain,
			HintsGiven: state.HintsGiven,
			Answer:     in.Message,
		})
	}

	action := Plan(state, msgType, assessment, in.Message, now)
	prompt := Compile(state, in.Context, action, now)

	return TurnResult{
		State:        state,
		SystemPrompt: prompt,
		Action:       action,
		MessageType:  msgType,
		Assessment:   assessment,
	}
}

// ExtractPending inspects the generated tutor reply and, when it poses a
// question, records it as pending on the state. Called by the turn loop
// after the reply has been produced, before the state is persisted.
func (e *Engine) ExtractPending(ctx context.Context, state *StudentState, reply string) Extraction {
	ext := e.extractor.Extract(ctx, reply)
	state.SetPending(ext.Question, ext.Concept)
	return ext
}
