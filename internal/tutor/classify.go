package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
)

// Pattern rules, checked in order. First match wins; the generative
// fallback only runs when none apply.
var (
	greetingRe  = regexp.MustCompile(`(?i)^(hi|hello|hey|start|begin|let'?s (start|go)|good (morning|evening|afternoon))`)
	ratingRe    = regexp.MustCompile(`^[1-5]$`)
	claimedRe   = regexp.MustCompile(`(?i)^(i (know|remember|studied|saw|read) this|i know|i've seen this)`)
	confusionRe = regexp.MustCompile(`(?i)(i('m| am) (confused|lost|stuck)|not (getting|clear|understanding)|don'?t understand|struggling|this is (hard|difficult|confusing))`)
	questionRe  = regexp.MustCompile(`(?i)^(what|why|how|when|where|explain|tell me|can you|could you|is it|are there|what'?s)`)
)

// ClassifyInput carries everything the classifier needs for one message.
type ClassifyInput struct {
	Message         string
	HistoryLen      int
	PendingQuestion string
	AwaitingRating  bool
}

// Classifier categorizes student messages using pattern rules with a
// generative fallback for ambiguous input.
type Classifier struct {
	provider llm.Provider
	cfg      CallConfig
}

// NewClassifier creates a classifier. provider may be nil, in which case
// ambiguous messages resolve to the deterministic default.
func NewClassifier(provider llm.Provider, cfg CallConfig) *Classifier {
	return &Classifier{provider: provider, cfg: cfg}
}

// Classify returns the message type. It never returns an error: a failed
// generative fallback resolves to answer when a question is pending,
// general otherwise.
func (c *Classifier) Classify(ctx context.Context, in ClassifyInput) MessageType {
	msg := normalize(in.Message)

	if in.HistoryLen == 0 || greetingRe.MatchString(msg) {
		return MessageGreeting
	}
	if in.AwaitingRating && ratingRe.MatchString(msg) {
		return MessageConfidenceRating
	}
	if claimedRe.MatchString(msg) {
		return MessageClaimedKnowledge
	}
	if confusionRe.MatchString(msg) {
		return MessageConfusion
	}
	if questionRe.MatchString(msg) {
		return MessageQuestion
	}

	return c.classifyAmbiguous(ctx, in)
}

// classifyAmbiguous asks the generative service to pick one of
// answer / question / general.
func (c *Classifier) classifyAmbiguous(ctx context.Context, in ClassifyInput) MessageType {
	fallback := MessageGeneral
	if in.PendingQuestion != "" {
		fallback = MessageAnswer
	}
	if c.provider == nil {
		return fallback
	}

	pendingLine := "No pending question."
	if in.PendingQuestion != "" {
		pendingLine = fmt.Sprintf("Pending question from tutor: %q", in.PendingQuestion)
	}

	ctx = llm.WithPurpose(ctx, PurposeClassify)
	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf(
				"Classify this student message in a tutoring session.\n%s\nStudent: %q\nPick the single best type.",
				pendingLine, in.Message),
		}},
		Schema:      classifySchema,
		MaxTokens:   c.cfg.ClassifyMaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return fallback
	}

	var out struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallback
	}

	switch MessageType(out.Type) {
	case MessageAnswer, MessageQuestion:
		return MessageType(out.Type)
	default:
		// Unexpected labels default to general.
		return MessageGeneral
	}
}
