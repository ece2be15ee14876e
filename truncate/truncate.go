package truncate

import "github.com/tmeadow/tokenledger/tokens"

// Strategy defines where content is removed from.
type Strategy int

const (
	// FromEnd removes content from the end (default).
	FromEnd Strategy = iota

	// FromStart removes content from the start.
	FromStart

	// FromMiddle removes content from the middle, keeping start and end.
	FromMiddle
)

// Markers inserted where content was removed.
const (
	DefaultEndMarker    = "..."
	DefaultStartMarker  = "..."
	DefaultMiddleMarker = "\n...[content truncated]...\n"
)

// Truncator shrinks text to fit within token limits.
type Truncator struct {
	est      tokens.Estimator
	strategy Strategy
	marker   string
}

// New creates a truncator with the given strategy and its default marker.
func New(strategy Strategy) *Truncator {
	marker := DefaultEndMarker
	if strategy == FromMiddle {
		marker = DefaultMiddleMarker
	}
	return &Truncator{
		est:      tokens.NewHeuristicEstimator(),
		strategy: strategy,
		marker:   marker,
	}
}

// NewFromEnd creates a truncator that removes content from the end.
func NewFromEnd() *Truncator { return New(FromEnd) }

// NewFromStart creates a truncator that removes content from the start.
func NewFromStart() *Truncator { return New(FromStart) }

// NewFromMiddle creates a truncator that removes content from the middle.
func NewFromMiddle() *Truncator { return New(FromMiddle) }

// WithEstimator sets a custom token estimator.
func (t *Truncator) WithEstimator(est tokens.Estimator) *Truncator {
	t.est = est
	return t
}

// WithMarker sets a custom marker for removed content.
func (t *Truncator) WithMarker(marker string) *Truncator {
	t.marker = marker
	return t
}

// Truncate reduces the text to fit within the token limit.
// Returns the resulting text and whether truncation occurred.
func (t *Truncator) Truncate(text string, maxTokens int) (string, bool) {
	if t.est.Fits(text, maxTokens) {
		return text, false
	}

	// Budget for the kept content, after the marker.
	target := maxTokens - t.est.Estimate(t.marker)
	if target <= 0 {
		return t.marker, true
	}

	runes := []rune(text)
	switch t.strategy {
	case FromStart:
		return t.marker + string(runes[len(runes)-t.fitSuffix(runes, target):]), true
	case FromMiddle:
		head := t.fitPrefix(runes, target/2)
		tail := t.fitSuffix(runes[head:], target-target/2)
		return string(runes[:head]) + t.marker + string(runes[len(runes)-tail:]), true
	default:
		return string(runes[:t.fitPrefix(runes, target)]) + t.marker, true
	}
}

// fitPrefix returns the largest rune count from the start that fits in
// maxTokens, found by binary search.
func (t *Truncator) fitPrefix(runes []rune, maxTokens int) int {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if t.est.Fits(string(runes[:mid]), maxTokens) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}

// fitSuffix returns the largest rune count from the end that fits in
// maxTokens, found by binary search.
func (t *Truncator) fitSuffix(runes []rune, maxTokens int) int {
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if t.est.Fits(string(runes[len(runes)-mid:]), maxTokens) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}

// ToTokens truncates text from the end to fit within maxTokens, using the
// default estimator.
func ToTokens(text string, maxTokens int) string {
	result, _ := NewFromEnd().Truncate(text, maxTokens)
	return result
}
