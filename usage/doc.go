// Package usage tracks actual token consumption and estimated cost across
// models.
//
// Where package budget predicts whether an operation fits, usage records
// what really happened once a response arrives. Totals are kept per model
// within a UTC-day window and reset automatically at the day boundary.
//
//	tracker := usage.NewTracker(usage.DefaultPricing)
//	tracker.Record("claude-sonnet-4", resp.InputTokens, resp.OutputTokens)
//	cost := tracker.EstimatedCost()
package usage
