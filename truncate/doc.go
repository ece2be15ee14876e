// Package truncate shrinks text to fit within a token budget.
//
// When a pre-flight validation reports insufficient space, the input can be
// truncated to the available token count instead of being rejected outright.
//
// Three strategies are available:
//
//   - FromEnd: drop content from the end (default)
//   - FromStart: drop content from the start
//   - FromMiddle: keep the start and end, drop the middle
//
// Basic usage:
//
//	tr := truncate.NewFromEnd()
//	result, truncated := tr.Truncate(longText, 100)
//
// Truncation counts tokens with a tokens.Estimator; pass a custom one with
// WithEstimator. All strategies operate on runes, so multi-byte characters
// are never split.
package truncate
