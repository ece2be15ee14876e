// Package budget decides whether a conversation operation fits inside a
// model's token budget before the operation executes.
//
// Validation is a pure computation over a Request. Rejections are returned
// as data in the Result, never as errors; storage and transport failures
// are the caller's concern.
//
//	res := budget.Validate(budget.Request{
//	    Operation:    budget.OpSend,
//	    InputTokens:  120,
//	    Complex:      budget.IsComplex(text),
//	    Model:        cfg,
//	    TotalTokens:  4200,
//	    SystemTokens: 500,
//	})
//
// # Budget Arithmetic
//
// System-instruction tokens are capped at 25% of the model's input budget.
// A slice of the input budget is reserved for the response: 35% for complex
// queries, 25% otherwise, never less than MinResponseTokens. What remains
// after the running total, the effective system tokens, and the reserve is
// the space available for new input.
//
// # Thresholds
//
// Projected usage past 90% of the input budget is a hard stop that forces a
// new conversation. Usage at or past 80% sets the Warn flag, which is
// suppressed once the user has explicitly continued past a warning.
package budget
