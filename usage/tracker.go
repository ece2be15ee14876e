package usage

import (
	"sync"
	"time"
)

// Usage accumulates token consumption for one model.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Requests     int
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.Requests += other.Requests
}

// TotalTokens returns the total tokens used.
func (u Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// Pricing holds per-million-token pricing for a model.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// DefaultPricing contains representative pricing for common models.
// Callers with current price sheets should supply their own map.
var DefaultPricing = map[string]Pricing{
	"claude-opus-4":   {InputPerMillion: 15.0, OutputPerMillion: 75.0},
	"claude-sonnet-4": {InputPerMillion: 3.0, OutputPerMillion: 15.0},
	"gpt-4o":          {InputPerMillion: 2.5, OutputPerMillion: 10.0},
	"gpt-4o-mini":     {InputPerMillion: 0.15, OutputPerMillion: 0.6},
}

// Tracker accumulates per-model usage within a UTC-day window.
// Totals reset automatically when the day rolls over.
type Tracker struct {
	mu     sync.RWMutex
	prices map[string]Pricing
	day    string
	totals map[string]Usage
	now    func() time.Time
}

// NewTracker creates a tracker with the given price table. A nil table
// disables cost estimation but still tracks token counts.
func NewTracker(prices map[string]Pricing) *Tracker {
	return &Tracker{
		prices: prices,
		totals: make(map[string]Usage),
		now:    time.Now,
	}
}

// Record adds a usage record for the given model.
func (t *Tracker) Record(modelID string, inputTokens, outputTokens int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rolloverLocked()

	u := t.totals[modelID]
	u.InputTokens += inputTokens
	u.OutputTokens += outputTokens
	u.Requests++
	t.totals[modelID] = u
}

// For returns today's usage for a specific model.
func (t *Tracker) For(modelID string) Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rolloverLocked()
	return t.totals[modelID]
}

// Summary returns a copy of today's usage totals per model.
func (t *Tracker) Summary() map[string]Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rolloverLocked()

	out := make(map[string]Usage, len(t.totals))
	for id, u := range t.totals {
		out[id] = u
	}
	return out
}

// Total returns today's usage aggregated across all models.
func (t *Tracker) Total() Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rolloverLocked()

	var total Usage
	for _, u := range t.totals {
		total.Add(u)
	}
	return total
}

// EstimatedCost returns today's estimated cost in USD across all models.
// Models without a price entry contribute nothing.
func (t *Tracker) EstimatedCost() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rolloverLocked()

	var cost float64
	for id, u := range t.totals {
		price, ok := t.prices[id]
		if !ok {
			continue
		}
		cost += float64(u.InputTokens) / 1_000_000 * price.InputPerMillion
		cost += float64(u.OutputTokens) / 1_000_000 * price.OutputPerMillion
	}
	return cost
}

// Day returns the UTC date (YYYY-MM-DD) the current totals cover.
func (t *Tracker) Day() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rolloverLocked()
	return t.day
}

// Reset clears today's totals.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = make(map[string]Usage)
}

// rolloverLocked discards totals from a previous day. Callers must hold t.mu.
func (t *Tracker) rolloverLocked() {
	day := t.now().UTC().Format(time.DateOnly)
	if day != t.day {
		t.day = day
		t.totals = make(map[string]Usage)
	}
}
