// Package tokens provides token estimation for LLM text without requiring
// a model-specific tokenizer.
//
// Estimation combines two heuristics: a character-to-token ratio of roughly
// 4 characters per token (a good approximation for English prose) and a
// word-count lower bound, since short words tend to tokenize to about one
// token each and the rune heuristic under-counts whitespace-heavy text.
//
// # Estimator
//
// The Estimator interface provides the counting methods:
//
//	est := tokens.NewHeuristicEstimator()
//	n := est.Estimate("Hello, world!")     // ~3 tokens
//	ok := est.Fits("some text", 1000)      // true if <= 1000 tokens
//
// For one-off estimation, use the convenience function:
//
//	n := tokens.Estimate("Hello, world!")
//
// Custom ratios are supported for models whose tokenizers run denser or
// sparser than the default:
//
//	est := tokens.NewHeuristicEstimatorWithRatio(3.5)
package tokens
