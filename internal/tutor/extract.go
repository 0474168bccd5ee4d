package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/prefrontal-labs/mindly-app/internal/llm"
)

// extractWindow caps how much of the tutor reply is sent for extraction.
const extractWindow = 600

// Extraction is the question/concept pulled out of a tutor reply. Both
// fields empty means the reply posed no trackable question.
type Extraction struct {
	Question string
	Concept  string
}

// Extractor identifies the question posed and concept tested in a tutor
// reply, so the next turn knows what answer it is waiting on.
type Extractor struct {
	provider llm.Provider
	cfg      CallConfig
}

// NewExtractor creates an extractor. provider may be nil; Extract then
// always reports no extraction.
func NewExtractor(provider llm.Provider, cfg CallConfig) *Extractor {
	return &Extractor{provider: provider, cfg: cfg}
}

// Extract inspects a generated tutor reply. Replies without a question
// mark are skipped without a generative call. Failures yield an empty
// Extraction, never an error.
func (e *Extractor) Extract(ctx context.Context, reply string) Extraction {
	if e.provider == nil || !strings.Contains(reply, "?") {
		return Extraction{}
	}

	window := reply
	if len(window) > extractWindow {
		cut := extractWindow
		// Back up to a rune boundary so the cut never splits a
		// multi-byte character.
		for cut > 0 && !utf8.RuneStart(window[cut]) {
			cut--
		}
		window = window[:cut]
	}

	ctx = llm.WithPurpose(ctx, PurposeExtract)
	resp, err := e.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf(
				"From this tutor response, extract the question being asked and the concept/topic being tested.\nResponse: %q",
				window),
		}},
		Schema:      extractSchema,
		MaxTokens:   e.cfg.ExtractMaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return Extraction{}
	}

	var raw struct {
		Question *string `json:"question"`
		Concept  *string `json:"concept"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Extraction{}
	}

	var out Extraction
	if raw.Question != nil {
		out.Question = *raw.Question
	}
	if raw.Concept != nil {
		out.Concept = *raw.Concept
	}
	return out
}
