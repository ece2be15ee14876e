// Package ledger maintains the running token total for a conversation.
//
// A Manager owns the token state of the active conversation: the running
// total, the per-message token map, the system-instruction tokens, and the
// continued-past-warning flag. Every mutation re-validates against the
// model budget, keeps the invariant sum(per-message) == running total,
// persists the state (unless the conversation is private), and notifies
// subscribed listeners.
//
//	mgr := ledger.New(ledger.Config{
//	    Models: registry,
//	    Store:  fileStore,
//	})
//	unsubscribe := mgr.Subscribe(myListener)
//	defer unsubscribe()
//
//	mgr.SetConversation("conv-1", "claude-sonnet-4")
//	res := mgr.AddMessage("msg-1", text)
//	if !res.Valid {
//	    // surface res.Reason to the user
//	}
//
// Dependencies are injected through Config; there is no package-level
// singleton. All methods are safe for concurrent use.
//
// # Error Handling
//
// Budget rejections come back as budget.Result values. Storage failures
// are logged and swallowed: the in-memory state stays authoritative and
// the conversation keeps working without persistence. A snapshot that
// fails its seal or integrity check on load resets the conversation to
// default token state and fires ConversationMustReset.
//
// # Private Conversations
//
// Conversation ids starting with "private-" are never persisted.
package ledger
