package store

import "errors"

// Sentinel errors for snapshot storage.
var (
	// ErrNotFound indicates no snapshot exists for the conversation.
	ErrNotFound = errors.New("snapshot not found")

	// ErrSealBroken indicates the sealed snapshot failed authentication:
	// the file was modified, corrupted, or sealed under a different key.
	ErrSealBroken = errors.New("sealed snapshot failed authentication")

	// ErrStampMismatch indicates the snapshot opened cleanly but its
	// integrity stamp does not match its fields and install identifier.
	ErrStampMismatch = errors.New("snapshot integrity stamp mismatch")
)

// Snapshot is the persisted token state for one conversation.
type Snapshot struct {
	// ConversationID identifies the conversation.
	ConversationID string `json:"conversation_id"`

	// ModelID is the model the conversation runs against.
	ModelID string `json:"model_id,omitempty"`

	// TotalTokens is the running token total.
	TotalTokens int `json:"total_tokens"`

	// SystemTokens is the system-instruction token count.
	SystemTokens int `json:"system_tokens"`

	// MessageCount is the number of messages accounted for in the total.
	MessageCount int `json:"message_count"`

	// ContinuedPastWarning records that the user chose to continue past
	// the soft usage warning.
	ContinuedPastWarning bool `json:"continued_past_warning,omitempty"`

	// UpdatedAt is the Unix timestamp of the last mutation.
	UpdatedAt int64 `json:"updated_at"`

	// Stamp is the hex-encoded integrity digest. Set on save, verified
	// on load.
	Stamp string `json:"stamp,omitempty"`
}

// Store persists conversation snapshots keyed by conversation id.
type Store interface {
	// Save writes the snapshot, replacing any previous one.
	Save(snap *Snapshot) error

	// Load returns the snapshot for the conversation, or ErrNotFound.
	Load(conversationID string) (*Snapshot, error)

	// Delete removes the snapshot. Deleting a missing snapshot is not
	// an error.
	Delete(conversationID string) error

	// List returns the conversation ids with stored snapshots.
	List() ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
