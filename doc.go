// Package tokenledger provides token-budget accounting for LLM chat clients.
//
// tokenledger is a standalone toolkit for tracking how much of a model's
// context window a conversation has consumed, and for deciding whether an
// operation (send, edit, reload) still fits the budget before it executes.
// Each subpackage can be used independently:
//
//   - tokens: Token estimation without a model-specific tokenizer
//   - model: Per-model token limits with config file loading and hot reload
//   - budget: Pre-flight validation of operations against a model budget
//   - truncate: Token-aware text truncation to fit the remaining budget
//   - store: Sealed, integrity-stamped persistence of conversation state
//   - ledger: The stateful per-conversation manager tying it all together
//   - usage: Post-hoc usage and cost tracking across models
//
// # Quick Start
//
// Pre-flight validation:
//
//	import "github.com/tmeadow/tokenledger/budget"
//	res := budget.Validate(budget.Request{
//	    Operation:   budget.OpSend,
//	    InputTokens: 120,
//	    Model:       cfg,
//	    TotalTokens: 4200,
//	})
//	if !res.Valid {
//	    // branch on res.Reason / res.ExceedsLimit
//	}
//
// Stateful accounting:
//
//	import "github.com/tmeadow/tokenledger/ledger"
//	mgr := ledger.New(ledger.Config{})
//	mgr.SetConversation("conv-1", "claude-sonnet-4")
//	res := mgr.AddMessage("msg-1", "Hello!")
//
// # Design Philosophy
//
//   - Business-rule rejections are data (a Result), never errors
//   - Each package usable independently
//   - Interfaces for extensibility, concrete types for simplicity
//   - Explicit dependency injection; no package-level singletons
package tokenledger
