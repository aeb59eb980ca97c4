package profile

import (
	"fmt"
	"log/slog"
)

// DefaultName is the profile used when callers do not pick one.
const DefaultName = "default"

// Registry manages the set of loaded scoring profiles.
type Registry struct {
	configDir string
	configs   map[string]*Config
}

// NewRegistry creates a registry backed by configDir (used only when no
// embedded profiles are available).
func NewRegistry(configDir string) *Registry {
	return &Registry{
		configDir: configDir,
		configs:   make(map[string]*Config),
	}
}

// LoadProfiles loads all profile definitions. Duplicate names are rejected;
// two tables answering to one name would make scores ambiguous.
func (r *Registry) LoadProfiles() error {
	configs, err := WalkConfigDirectory(r.configDir)
	if err != nil {
		return fmt.Errorf("failed to load scoring profiles: %w", err)
	}

	loaded := make(map[string]*Config, len(configs))
	for _, config := range configs {
		if _, dup := loaded[config.Name]; dup {
			return fmt.Errorf("duplicate scoring profile %q", config.Name)
		}
		loaded[config.Name] = config
	}

	r.configs = loaded
	slog.Info("loaded scoring profiles", "count", len(loaded), "configDir", r.configDir)
	return nil
}

// Get returns the named profile.
func (r *Registry) Get(name string) (*Config, bool) {
	config, ok := r.configs[name]
	return config, ok
}

// Default returns the default profile, which every deployment is expected to
// ship.
func (r *Registry) Default() (*Config, error) {
	config, ok := r.configs[DefaultName]
	if !ok {
		return nil, fmt.Errorf("no %q scoring profile loaded", DefaultName)
	}
	return config, nil
}

// ProfileCount returns how many profiles are loaded.
func (r *Registry) ProfileCount() int {
	return len(r.configs)
}

// Names lists the loaded profile names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	return names
}
