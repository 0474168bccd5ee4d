package tutor

import "strings"

// Purpose labels attached to generative calls for event logging.
const (
	PurposeClassify = "classify"
	PurposeAssess   = "assess"
	PurposeExtract  = "extract"
	PurposeTutor    = "tutor-reply"
)

// CallConfig bounds the generative calls made by the pipeline's two
// I/O-bearing stages. These are small, cheap calls; the final tutor reply
// is generated by the caller, not by this package.
type CallConfig struct {
	ClassifyMaxTokens int
	AssessMaxTokens   int
	ExtractMaxTokens  int
}

// DefaultCallConfig returns sensible defaults.
func DefaultCallConfig() CallConfig {
	return CallConfig{
		ClassifyMaxTokens: 30,
		AssessMaxTokens:   150,
		ExtractMaxTokens:  80,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
