package model

// DefaultModelID is the registry entry used when a model id is unknown.
const DefaultModelID = "default"

// Tier represents a subscription tier that scales model budgets.
type Tier int

// Subscription tiers.
const (
	// TierFree gets half the subscribed input and output limits.
	TierFree Tier = iota

	// TierSubscribed gets the full model limits.
	TierSubscribed
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierFree:
		return "free"
	case TierSubscribed:
		return "subscribed"
	default:
		return "unknown"
	}
}

// Config holds the token limits for a single model.
type Config struct {
	// Name is an optional human-readable model name.
	Name string `toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`

	// MaxInputTokens is the input budget for one conversation.
	MaxInputTokens int `toml:"max_input_tokens" json:"max_input_tokens" yaml:"max_input_tokens"`

	// MaxOutputTokens limits the length of a single response.
	MaxOutputTokens int `toml:"max_output_tokens" json:"max_output_tokens" yaml:"max_output_tokens"`

	// ContextWindow is the model's full context window, when it differs
	// from MaxInputTokens. Informational.
	ContextWindow int `toml:"context_window,omitempty" json:"context_window,omitempty" yaml:"context_window,omitempty"`
}

// ForTier returns the limits adjusted for the subscription tier.
// TierFree gets exactly half the input and output budget (integer division).
func (c Config) ForTier(t Tier) Config {
	if t == TierSubscribed {
		return c
	}
	c.MaxInputTokens /= 2
	c.MaxOutputTokens /= 2
	return c
}

// Document is the on-disk model configuration format.
type Document struct {
	// Models maps model ids to their token limits.
	Models map[string]Config `toml:"models" json:"models" yaml:"models"`
}

// defaults returns the built-in model limits. The "default" entry is the
// fallback for unknown model ids.
func defaults() map[string]Config {
	return map[string]Config{
		"claude-opus-4":     {MaxInputTokens: 200000, MaxOutputTokens: 32000},
		"claude-sonnet-4":   {MaxInputTokens: 200000, MaxOutputTokens: 64000},
		"claude-3.5-haiku":  {MaxInputTokens: 200000, MaxOutputTokens: 8192},
		"gpt-4o":            {MaxInputTokens: 128000, MaxOutputTokens: 16384},
		"gpt-4o-mini":       {MaxInputTokens: 128000, MaxOutputTokens: 16384},
		"gemini-2.5-pro":    {MaxInputTokens: 1048576, MaxOutputTokens: 65536},
		DefaultModelID:      {MaxInputTokens: 100000, MaxOutputTokens: 8192},
	}
}
