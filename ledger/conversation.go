package ledger

import (
	"strings"
	"time"

	"github.com/tmeadow/tokenledger/budget"
)

// PrivatePrefix marks conversations that are never persisted.
const PrivatePrefix = "private-"

// IsPrivate reports whether the conversation id is exempt from persistence.
func IsPrivate(conversationID string) bool {
	return strings.HasPrefix(conversationID, PrivatePrefix)
}

// ConversationStats is a point-in-time view of a conversation's token
// state, delivered to listeners on every change.
type ConversationStats struct {
	ConversationID string
	ModelID        string
	TotalTokens    int
	SystemTokens   int
	MessageCount   int
	UpdatedAt      time.Time
}

// conversation is the in-memory token state of the active conversation.
// The per-message map covers only messages added in this session; tokens
// restored from a snapshot are carried in base.
type conversation struct {
	id      string
	modelID string

	total      int
	base       int
	perMessage map[string]int

	systemTokens         int
	continuedPastWarning bool
	updatedAt            time.Time
}

func newConversation(id, modelID string) *conversation {
	return &conversation{
		id:           id,
		modelID:      modelID,
		perMessage:   make(map[string]int),
		systemTokens: budget.DefaultSystemTokens,
		updatedAt:    time.Now(),
	}
}

// messageSum returns the sum of the per-message token counts.
func (c *conversation) messageSum() int {
	sum := 0
	for _, n := range c.perMessage {
		sum += n
	}
	return sum
}

func (c *conversation) stats() ConversationStats {
	return ConversationStats{
		ConversationID: c.id,
		ModelID:        c.modelID,
		TotalTokens:    c.total,
		SystemTokens:   c.systemTokens,
		MessageCount:   len(c.perMessage),
		UpdatedAt:      c.updatedAt,
	}
}
