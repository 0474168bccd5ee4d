package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
)

const assessSystemPrompt = `You evaluate student answers in an adaptive tutoring session. Be strict but fair.`

// AssessInput carries the pending question context and the student's raw
// answer text.
type AssessInput struct {
	Question   string
	Concept    string
	ExamDomain string
	HintsGiven int
	Answer     string
}

// Assessor scores answer correctness and depth via a generative rubric call.
type Assessor struct {
	provider llm.Provider
	cfg      CallConfig
}

// NewAssessor creates an assessor. provider may be nil; Assess then always
// reports "no assessment".
func NewAssessor(provider llm.Provider, cfg CallConfig) *Assessor {
	return &Assessor{provider: provider, cfg: cfg}
}

// Assess evaluates an answer against the pending question. A nil result
// means no assessment happened; the planner must not treat it as
// incorrect. Failures are never propagated.
func (a *Assessor) Assess(ctx context.Context, in AssessInput) *AssessmentResult {
	if in.Question == "" || a.provider == nil {
		return nil
	}

	concept := in.Concept
	if concept == "" {
		concept = "unknown"
	}

	ctx = llm.WithPurpose(ctx, PurposeAssess)
	resp, err := a.provider.Generate(ctx, llm.Request{
		System: assessSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: buildAssessMessage(in, concept),
		}},
		Schema:      assessSchema,
		MaxTokens:   a.cfg.AssessMaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil
	}

	var raw struct {
		Score         int     `json:"score"`
		IsCorrect     bool    `json:"isCorrect"`
		Misconception *string `json:"misconception"`
		Feedback      string  `json:"feedback"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil
	}

	result := &AssessmentResult{
		Score:     raw.Score,
		IsCorrect: raw.IsCorrect,
		Feedback:  raw.Feedback,
	}
	if raw.Misconception != nil {
		result.Misconception = *raw.Misconception
	}
	return result
}

func buildAssessMessage(in AssessInput, concept string) string {
	return fmt.Sprintf(`Tutor asked: %q
Concept being tested: %q
Domain: %s
Hints already given: %d
Student answered: %q

Score 0-3:
3 = Correct AND demonstrates deep understanding (explains reasoning)
2 = Correct but shallow (right answer, unclear why)
1 = Partially correct or right direction
0 = Incorrect or completely off track

Also name the misconception behind the error if there is a recognizable one.`,
		in.Question, concept, in.ExamDomain, in.HintsGiven, in.Answer)
}
