package profile

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmbeddedFS is set at startup with the compiled-in profile files. When
// unset or empty, loading falls back to the OS filesystem.
var EmbeddedFS embed.FS

// WalkConfigDirectory loads every YAML profile definition, preferring the
// embedded filesystem and falling back to configDir on disk.
func WalkConfigDirectory(configDir string) ([]*Config, error) {
	configs, err := walkEmbeddedConfigs()
	if err == nil && len(configs) > 0 {
		slog.Info("loaded scoring profiles from embedded filesystem", "count", len(configs))
		return configs, nil
	}

	return walkOSFilesystem(configDir)
}

func walkEmbeddedConfigs() ([]*Config, error) {
	var configs []*Config

	if _, err := fs.Stat(EmbeddedFS, "."); err != nil {
		return nil, fmt.Errorf("embedded FS not available")
	}

	err := fs.WalkDir(EmbeddedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(d.Name()) {
			return nil
		}

		data, err := EmbeddedFS.ReadFile(path)
		if err != nil {
			slog.Error("failed to read embedded profile", "path", path, "error", err)
			return err
		}

		config, err := parseProfileConfig(data, path)
		if err != nil {
			slog.Error("failed to parse embedded profile", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Info("loaded scoring profile from embedded FS", "profile", config.Name, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded profiles: %w", err)
	}

	return configs, nil
}

// walkOSFilesystem is the development/testing fallback: profiles read from a
// directory on disk. A missing directory yields an empty set, not an error.
func walkOSFilesystem(configDir string) ([]*Config, error) {
	var configs []*Config

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		slog.Warn("profile directory does not exist", "dir", configDir)
		return configs, nil
	}

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Error("error accessing path", "path", path, "error", err)
			return err
		}
		if info.IsDir() || !isYAML(info.Name()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read profile file", "path", path, "error", err)
			return err
		}

		config, err := parseProfileConfig(data, path)
		if err != nil {
			slog.Error("failed to parse profile", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Info("loaded scoring profile from filesystem", "profile", config.Name, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk profile directory: %w", err)
	}

	return configs, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// parseProfileConfig parses and validates one YAML profile definition. The
// weight table itself is validated the same way a hand-built table would be,
// so a bad profile fails at load time rather than at scoring time.
func parseProfileConfig(data []byte, path string) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.Name == "" {
		return nil, fmt.Errorf("profile name is required in %s", path)
	}
	if config.MaxHops < 1 {
		return nil, fmt.Errorf("profile %q: max_hops must be at least 1", config.Name)
	}
	if len(config.Weights) != config.MaxHops {
		return nil, fmt.Errorf("profile %q: %d weight entries for max_hops %d",
			config.Name, len(config.Weights), config.MaxHops)
	}
	if config.IsolationThreshold < 0 {
		return nil, fmt.Errorf("profile %q: isolation_threshold must be non-negative", config.Name)
	}
	if err := config.Table().Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", config.Name, err)
	}

	return &config, nil
}
