package tokens

import (
	"strings"
	"unicode/utf8"
)

// DefaultCharsPerToken is the default character-to-token ratio.
// Approximately 4 characters equals 1 token for English text.
const DefaultCharsPerToken = 4.0

// Estimator estimates token counts for text.
type Estimator interface {
	// Estimate returns the estimated number of tokens in the given text.
	Estimate(text string) int

	// Fits returns true if the text fits within the token limit.
	Fits(text string, limit int) bool
}

// HeuristicEstimator estimates tokens from rune and word counts.
// It takes the larger of runes/CharsPerToken and words*3/4, so that
// whitespace-heavy text is not under-counted by the rune ratio alone.
type HeuristicEstimator struct {
	// CharsPerToken is the average characters per token.
	// Default is 4, which works well for English text.
	CharsPerToken float64
}

// NewHeuristicEstimator creates an estimator with default settings.
func NewHeuristicEstimator() *HeuristicEstimator {
	return &HeuristicEstimator{CharsPerToken: DefaultCharsPerToken}
}

// NewHeuristicEstimatorWithRatio creates an estimator with a custom ratio.
// If charsPerToken is <= 0, the default ratio (4.0) is used.
func NewHeuristicEstimatorWithRatio(charsPerToken float64) *HeuristicEstimator {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &HeuristicEstimator{CharsPerToken: charsPerToken}
}

// Estimate returns the estimated number of tokens in the given text.
// Actual token counts vary with the model's tokenizer; this is a fast
// approximation intended for budget accounting, not billing.
func (e *HeuristicEstimator) Estimate(text string) int {
	if text == "" {
		return 0
	}
	ratio := e.CharsPerToken
	if ratio <= 0 {
		ratio = DefaultCharsPerToken
	}

	// Count runes rather than bytes so multi-byte characters are not
	// over-counted.
	byRunes := int(float64(utf8.RuneCountInString(text))/ratio + 0.5)
	byWords := len(strings.Fields(text)) * 3 / 4

	if byWords > byRunes {
		return byWords
	}
	return byRunes
}

// Fits returns true if the text fits within the token limit.
func (e *HeuristicEstimator) Fits(text string, limit int) bool {
	return e.Estimate(text) <= limit
}

// Estimate is a convenience function using the default estimator.
func Estimate(text string) int {
	return NewHeuristicEstimator().Estimate(text)
}
