package ledger

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/tmeadow/tokenledger/budget"
	"github.com/tmeadow/tokenledger/model"
	"github.com/tmeadow/tokenledger/store"
	"github.com/tmeadow/tokenledger/tokens"
	"github.com/tmeadow/tokenledger/truncate"
	"github.com/tmeadow/tokenledger/usage"
)

// TierFunc reports the user's current subscription tier. It is consulted
// on every validation so tier changes take effect immediately.
type TierFunc func() model.Tier

// Config holds a Manager's dependencies. Zero-value fields get defaults;
// a nil Store disables persistence.
type Config struct {
	// Estimator counts tokens. Default: tokens.NewHeuristicEstimator().
	Estimator tokens.Estimator

	// Models supplies per-model token limits. Default: model.NewRegistry().
	Models *model.Registry

	// Store persists conversation snapshots. Nil disables persistence.
	Store store.Store

	// Logger receives storage failures and drift corrections.
	// Default: slog.Default().
	Logger *slog.Logger

	// Tier reports the user's subscription tier.
	// Default: always model.TierSubscribed.
	Tier TierFunc

	// Usage optionally records actual response token consumption.
	Usage *usage.Tracker
}

// Manager maintains the token ledger for the active conversation.
// All methods are safe for concurrent use.
type Manager struct {
	est    tokens.Estimator
	models *model.Registry
	store  store.Store
	log    *slog.Logger
	tier   TierFunc
	usage  *usage.Tracker

	listeners listenerSet

	mu   sync.Mutex
	conv *conversation
}

// New creates a Manager from the given dependencies.
func New(cfg Config) *Manager {
	if cfg.Estimator == nil {
		cfg.Estimator = tokens.NewHeuristicEstimator()
	}
	if cfg.Models == nil {
		cfg.Models = model.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Tier == nil {
		cfg.Tier = func() model.Tier { return model.TierSubscribed }
	}
	return &Manager{
		est:    cfg.Estimator,
		models: cfg.Models,
		store:  cfg.Store,
		log:    cfg.Logger,
		tier:   cfg.Tier,
		usage:  cfg.Usage,
	}
}

// Subscribe registers a listener and returns the function that removes it.
func (m *Manager) Subscribe(l Listener) (unsubscribe func()) {
	return m.listeners.subscribe(l)
}

// SetConversation switches the active conversation, discarding the
// in-memory per-message map. Persisted state for the conversation is
// restored when present; state that fails its seal or integrity check
// resets the conversation to defaults and fires ConversationMustReset.
func (m *Manager) SetConversation(conversationID, modelID string) {
	m.mu.Lock()
	conv := newConversation(conversationID, modelID)
	mustReset := false

	if m.store != nil && conversationID != "" && !IsPrivate(conversationID) {
		snap, err := m.store.Load(conversationID)
		switch {
		case err == nil:
			conv.total = snap.TotalTokens
			conv.base = snap.TotalTokens
			conv.systemTokens = snap.SystemTokens
			conv.continuedPastWarning = snap.ContinuedPastWarning
			conv.updatedAt = time.Unix(snap.UpdatedAt, 0)
			if snap.ModelID != "" && modelID == "" {
				conv.modelID = snap.ModelID
			}
		case errors.Is(err, store.ErrNotFound):
			// Fresh conversation.
		default:
			// Seal or stamp failure, or plain I/O trouble: the stored
			// state cannot be trusted, start from defaults.
			m.log.Warn("persisted token state rejected, resetting to defaults",
				"conversation", conversationID, "error", err)
			mustReset = true
		}
	}

	m.conv = conv
	m.mu.Unlock()

	if mustReset {
		m.notify(func(l Listener) { l.ConversationMustReset(conversationID) })
	}
}

// Validate checks whether the operation fits the current budget without
// mutating any state.
func (m *Manager) Validate(op budget.Operation, text string) budget.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validateLocked(op, text)
}

// AddMessage validates the text as a new message and, when accepted,
// records its token count, updates the running total, persists, and
// notifies listeners. A rejected message mutates nothing.
func (m *Manager) AddMessage(messageID, text string) budget.Result {
	return m.applyMessage(budget.OpSend, messageID, text)
}

// UpdateMessage replaces an existing message's text, adjusting the running
// total by the difference. Updating an unknown message id behaves like
// AddMessage.
func (m *Manager) UpdateMessage(messageID, text string) budget.Result {
	return m.applyMessage(budget.OpEdit, messageID, text)
}

func (m *Manager) applyMessage(op budget.Operation, messageID, text string) budget.Result {
	m.mu.Lock()
	res := m.validateLocked(op, text)
	if !res.Valid {
		id := m.conv.id
		exceeded := res.ExceedsLimit
		m.mu.Unlock()
		if exceeded {
			m.notify(func(l Listener) { l.MaxTokensReached(id) })
		}
		return res
	}

	c := m.conv
	n := m.est.Estimate(text)
	if old, ok := c.perMessage[messageID]; ok {
		c.total -= old
	}
	c.perMessage[messageID] = n
	c.total += n
	m.reconcileLocked()
	c.updatedAt = time.Now()
	m.persistLocked()
	stats := c.stats()
	m.mu.Unlock()

	m.notify(func(l Listener) { l.TokensChanged(stats) })
	return res
}

// RemoveMessage subtracts a message from the ledger. Removing an unknown
// message id is a no-op.
func (m *Manager) RemoveMessage(messageID string) {
	m.mu.Lock()
	c := m.current()
	n, ok := c.perMessage[messageID]
	if !ok {
		m.mu.Unlock()
		return
	}
	delete(c.perMessage, messageID)
	c.total -= n
	m.reconcileLocked()
	c.updatedAt = time.Now()
	m.persistLocked()
	stats := c.stats()
	m.mu.Unlock()

	m.notify(func(l Listener) { l.TokensChanged(stats) })
}

// SetSystemTokens replaces the system-instruction token count.
// Validate the instruction text with OpSystemInstruction first.
func (m *Manager) SetSystemTokens(n int) {
	m.mu.Lock()
	c := m.current()
	c.systemTokens = n
	c.updatedAt = time.Now()
	m.persistLocked()
	stats := c.stats()
	m.mu.Unlock()

	m.notify(func(l Listener) { l.TokensChanged(stats) })
}

// ContinuePastWarning records that the user chose to continue past the
// soft usage warning, suppressing it for the rest of the conversation.
func (m *Manager) ContinuePastWarning() {
	m.mu.Lock()
	m.current().continuedPastWarning = true
	m.persistLocked()
	m.mu.Unlock()
}

// Reset discards the conversation's token state, returning it to defaults
// and removing any persisted snapshot.
func (m *Manager) Reset() {
	m.mu.Lock()
	c := m.current()
	id, modelID := c.id, c.modelID
	m.conv = newConversation(id, modelID)
	if m.store != nil && id != "" && !IsPrivate(id) {
		if err := m.store.Delete(id); err != nil {
			m.log.Error("delete persisted token state failed",
				"conversation", id, "error", err)
		}
	}
	stats := m.conv.stats()
	m.mu.Unlock()

	m.notify(func(l Listener) { l.TokensChanged(stats) })
}

// TrimToFit truncates the text to the currently available token budget.
// Returns the (possibly unchanged) text and whether truncation occurred.
func (m *Manager) TrimToFit(text string) (string, bool) {
	m.mu.Lock()
	res := m.validateLocked(budget.OpSend, text)
	m.mu.Unlock()

	return truncate.NewFromEnd().WithEstimator(m.est).Truncate(text, res.AvailableTokens)
}

// RecordUsage reports actual token consumption for a completed response
// against the active conversation's model. No-op without a usage tracker.
func (m *Manager) RecordUsage(inputTokens, outputTokens int) {
	if m.usage == nil {
		return
	}
	m.mu.Lock()
	modelID := m.current().modelID
	m.mu.Unlock()
	m.usage.Record(modelID, inputTokens, outputTokens)
}

// TotalTokens returns the conversation's running token total.
func (m *Manager) TotalTokens() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current().total
}

// MessageTokens returns the recorded token count for a message.
func (m *Manager) MessageTokens(messageID string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.current().perMessage[messageID]
	return n, ok
}

// Stats returns a point-in-time view of the conversation's token state.
func (m *Manager) Stats() ConversationStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current().stats()
}

// current returns the active conversation, lazily creating an unnamed,
// unpersisted one so the Manager is usable before SetConversation.
// Callers must hold m.mu.
func (m *Manager) current() *conversation {
	if m.conv == nil {
		m.conv = newConversation("", "")
	}
	return m.conv
}

// validateLocked runs the pre-flight budget check for the active
// conversation. Callers must hold m.mu.
func (m *Manager) validateLocked(op budget.Operation, text string) budget.Result {
	c := m.current()
	cfg := m.models.Get(c.modelID).ForTier(m.tier())
	return budget.Validate(budget.Request{
		Operation:            op,
		InputTokens:          m.est.Estimate(text),
		Complex:              budget.IsComplex(text),
		Model:                cfg,
		TotalTokens:          c.total,
		SystemTokens:         c.systemTokens,
		ContinuedPastWarning: c.continuedPastWarning,
	})
}

// reconcileLocked restores the invariant that the running total equals the
// restored base plus the sum of per-message counts. Drift is corrected and
// logged rather than silently absorbed. Callers must hold m.mu.
func (m *Manager) reconcileLocked() {
	c := m.conv
	want := c.base + c.messageSum()
	if c.total != want {
		m.log.Warn("token total drift corrected",
			"conversation", c.id, "stored", c.total, "recomputed", want)
		c.total = want
	}
}

// persistLocked writes the conversation snapshot, swallowing (but logging)
// storage failures: the in-memory ledger stays authoritative. Private and
// unnamed conversations are never persisted. Callers must hold m.mu.
func (m *Manager) persistLocked() {
	c := m.conv
	if m.store == nil || c.id == "" || IsPrivate(c.id) {
		return
	}
	snap := &store.Snapshot{
		ConversationID:       c.id,
		ModelID:              c.modelID,
		TotalTokens:          c.total,
		SystemTokens:         c.systemTokens,
		MessageCount:         len(c.perMessage),
		ContinuedPastWarning: c.continuedPastWarning,
		UpdatedAt:            c.updatedAt.Unix(),
	}
	if err := m.store.Save(snap); err != nil {
		m.log.Error("persist token state failed", "conversation", c.id, "error", err)
	}
}

// notify broadcasts to all subscribers. A panicking listener is recovered
// and logged; the remaining listeners still run.
func (m *Manager) notify(fn func(Listener)) {
	for _, l := range m.listeners.snapshot() {
		func() {
			defer func() {
				if r := recover(); r != nil {
					m.log.Error("token listener panicked", "panic", r)
				}
			}()
			fn(l)
		}()
	}
}
