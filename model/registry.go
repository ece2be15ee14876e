package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for registry operations.
var (
	// ErrUnsupportedFormat indicates a config file extension that is
	// neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Registry is a thread-safe map from model id to Config.
// A new Registry is seeded with built-in defaults.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]Config
}

// NewRegistry creates a registry seeded with the built-in model limits.
func NewRegistry() *Registry {
	return &Registry{configs: defaults()}
}

// Get returns the Config for the given model id, falling back to the
// "default" entry when the id is unknown. Lookups always succeed as long
// as the default entry exists.
func (r *Registry) Get(modelID string) Config {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cfg, ok := r.configs[modelID]; ok {
		return cfg
	}
	return r.configs[DefaultModelID]
}

// Set adds or replaces the Config for a model id.
func (r *Registry) Set(modelID string, cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[modelID] = cfg
}

// Models returns all known model ids, sorted alphabetically.
func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.configs))
	for id := range r.configs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile merges model configs from a TOML or YAML file into the registry.
// File entries override built-in defaults with the same id; defaults for
// ids not present in the file are kept.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read model config: %w", err)
	}

	var doc Document
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse model config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse model config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, cfg := range doc.Models {
		r.configs[id] = cfg
	}
	return nil
}
