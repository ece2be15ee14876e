// Package model provides per-model token limits and their configuration.
//
// A Config describes how many input and output tokens a model allows. The
// Registry holds the Config for every known model, seeded with built-in
// defaults and optionally replaced from a TOML or YAML config file:
//
//	reg := model.NewRegistry()
//	if err := reg.LoadFile("models.toml"); err != nil { ... }
//	cfg := reg.Get("claude-sonnet-4")
//
// Unknown model ids fall back to the "default" entry, so lookups always
// succeed.
//
// # Subscription Tiers
//
// Budgets scale with the user's subscription tier. Free-tier users get
// exactly half the subscribed limits:
//
//	cfg := reg.Get("claude-sonnet-4").ForTier(model.TierFree)
//
// # Hot Reload
//
// Watch keeps a registry in sync with its config file using fsnotify:
//
//	w, err := model.Watch(reg, "models.toml", logger)
//	defer w.Close()
//
// # Config File Format
//
// TOML:
//
//	[models."claude-sonnet-4"]
//	max_input_tokens = 200000
//	max_output_tokens = 64000
//
// YAML files (.yaml/.yml) use the same structure. Schema returns a JSON
// schema for the document, suitable for editor validation.
package model
