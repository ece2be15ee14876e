package ledger

import "sync"

// Listener receives synchronous notifications about conversation token
// state. Implementations must not block; a panicking listener is recovered
// and logged, and the remaining listeners still run.
type Listener interface {
	// TokensChanged fires after every accepted mutation.
	TokensChanged(stats ConversationStats)

	// MaxTokensReached fires when an operation was rejected because the
	// conversation passed the hard usage limit.
	MaxTokensReached(conversationID string)

	// ConversationMustReset fires when persisted state failed its
	// integrity check on load and the conversation was reset to defaults.
	ConversationMustReset(conversationID string)
}

// listenerSet is a subscription registry with explicit lifetimes: Subscribe
// returns the function that removes the subscription.
type listenerSet struct {
	mu   sync.Mutex
	next int
	subs map[int]Listener
}

func (s *listenerSet) subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]Listener)
	}
	id := s.next
	s.next++
	s.subs[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// snapshot returns the current subscribers. Broadcast iterates over the
// copy so listeners may unsubscribe (or subscribe) from inside a callback.
func (s *listenerSet) snapshot() []Listener {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Listener, 0, len(s.subs))
	for _, l := range s.subs {
		out = append(out, l)
	}
	return out
}
