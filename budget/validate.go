package budget

import "github.com/tmeadow/tokenledger/model"

// Budget thresholds and allocation percentages.
const (
	// HardLimitPercent is the usage percentage past which an operation is
	// rejected and the conversation must be restarted.
	HardLimitPercent = 90

	// WarnPercent is the usage percentage at which the soft warning fires.
	WarnPercent = 80

	// SystemCapPercent caps effective system-instruction tokens as a
	// percentage of the model's input budget.
	SystemCapPercent = 25

	// ComplexReservePercent is the response reserve for complex queries.
	ComplexReservePercent = 35

	// DefaultReservePercent is the response reserve for everything else.
	DefaultReservePercent = 25

	// MinResponseTokens is the floor on the response reserve.
	MinResponseTokens = 500

	// DefaultSystemTokens is the system-instruction token count assumed
	// for a fresh conversation.
	DefaultSystemTokens = 500
)

// Reason strings carried on a Result, in priority order.
const (
	ReasonLimitExceeded  = "token limit exceeded for this conversation"
	ReasonNoSpace        = "not enough space left in the context window"
	ReasonNoResponseRoom = "no room left for a minimum-length response"
	ReasonOK             = "validation passed"
)

// Request describes a prospective operation to validate.
type Request struct {
	// Operation is what the caller is about to do.
	Operation Operation

	// InputTokens is the estimated token count of the input text.
	InputTokens int

	// Complex marks queries that need the larger response reserve.
	// See IsComplex.
	Complex bool

	// Model holds the token limits, already adjusted for the user's
	// subscription tier (see model.Config.ForTier).
	Model model.Config

	// TotalTokens is the conversation's running token total.
	TotalTokens int

	// SystemTokens is the current system-instruction token count.
	SystemTokens int

	// ContinuedPastWarning suppresses the soft warning once the user has
	// explicitly chosen to continue.
	ContinuedPastWarning bool
}

// Result is the outcome of validating one operation. It is a transient
// computed value and is never persisted.
type Result struct {
	// Valid is true when the operation may proceed.
	Valid bool

	// ExceedsLimit is true when projected usage passed the hard limit.
	ExceedsLimit bool

	// AvailableTokens is the input space left after the running total,
	// effective system tokens, and response reserve.
	AvailableTokens int

	// UsagePercent is projected usage as a percentage of the input budget.
	UsagePercent int

	// Warn is true when projected usage crossed WarnPercent and the user
	// has not continued past a warning.
	Warn bool

	// ForceNewConversation is true when the conversation cannot accept
	// further input and must be restarted.
	ForceNewConversation bool

	// Reason is one of the fixed Reason* strings.
	Reason string
}

// Validate decides whether the requested operation fits the model budget.
// It is a pure function: rejections come back as data, never as errors.
func Validate(req Request) Result {
	maxInput := req.Model.MaxInputTokens
	if maxInput <= 0 {
		return Result{
			ExceedsLimit:         true,
			ForceNewConversation: true,
			Reason:               ReasonLimitExceeded,
		}
	}

	system := req.SystemTokens
	if systemCap := maxInput * SystemCapPercent / 100; system > systemCap {
		system = systemCap
	}

	reservePercent := DefaultReservePercent
	if req.Complex {
		reservePercent = ComplexReservePercent
	}
	reserve := maxInput * reservePercent / 100
	if reserve < MinResponseTokens {
		reserve = MinResponseTokens
	}

	current := req.TotalTokens + system
	projected := current + req.InputTokens
	available := maxInput - current - reserve
	if available < 0 {
		available = 0
	}

	res := Result{
		AvailableTokens: available,
		UsagePercent:    projected * 100 / maxInput,
	}
	res.Warn = res.UsagePercent >= WarnPercent && !req.ContinuedPastWarning

	switch {
	case projected > maxInput*HardLimitPercent/100:
		res.ExceedsLimit = true
		res.ForceNewConversation = true
		res.Reason = ReasonLimitExceeded
	case req.InputTokens > available:
		res.Reason = ReasonNoSpace
	case maxInput-projected < MinResponseTokens:
		res.Reason = ReasonNoResponseRoom
	default:
		res.Valid = true
		res.Reason = ReasonOK
	}
	return res
}
