// Package config loads the runtime configuration from the environment.
// Connection settings use the standard NEO4J_* variables; engine knobs use
// the RISKSCOPE_* prefix. Validation failures are fatal at startup, before
// any driver is created.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultURI         = "bolt://localhost:7687"
	DefaultUsername    = "neo4j"
	DefaultDatabase    = "neo4j"
	DefaultMaxHops     = 3
	DefaultThreshold   = 2
	DefaultMaxNodes    = 100_000
	DefaultWorkers     = 8
	DefaultProfileName = "default"
)

// Config holds everything the server and CLI need to run.
type Config struct {
	// Neo4j connection.
	URI      string
	Username string
	Password string
	Database string

	// When set, only read-only tools are registered.
	ReadOnly bool

	// Engine knobs.
	MaxHops            int
	IsolationThreshold int
	MaxNodes           int
	Workers            int
	ProfileName        string
}

// Load reads the environment and applies defaults. It does not validate;
// call Validate before using the result.
func Load() (*Config, error) {
	cfg := &Config{
		URI:         getEnv("NEO4J_URI", DefaultURI),
		Username:    getEnv("NEO4J_USERNAME", DefaultUsername),
		Password:    os.Getenv("NEO4J_PASSWORD"),
		Database:    getEnv("NEO4J_DATABASE", DefaultDatabase),
		ReadOnly:    boolEnv("NEO4J_READ_ONLY"),
		ProfileName: getEnv("RISKSCOPE_PROFILE", DefaultProfileName),
	}

	var err error
	if cfg.MaxHops, err = intEnv("RISKSCOPE_MAX_HOPS", DefaultMaxHops); err != nil {
		return nil, err
	}
	if cfg.IsolationThreshold, err = intEnv("RISKSCOPE_ISOLATION_THRESHOLD", DefaultThreshold); err != nil {
		return nil, err
	}
	if cfg.MaxNodes, err = intEnv("RISKSCOPE_MAX_NODES", DefaultMaxNodes); err != nil {
		return nil, err
	}
	if cfg.Workers, err = intEnv("RISKSCOPE_WORKERS", DefaultWorkers); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and required fields.
func (c *Config) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("NEO4J_URI must not be empty")
	}
	if c.Database == "" {
		return fmt.Errorf("NEO4J_DATABASE must not be empty")
	}
	if c.MaxHops < 1 {
		return fmt.Errorf("RISKSCOPE_MAX_HOPS must be at least 1, got %d", c.MaxHops)
	}
	if c.IsolationThreshold < 0 {
		return fmt.Errorf("RISKSCOPE_ISOLATION_THRESHOLD must not be negative, got %d", c.IsolationThreshold)
	}
	if c.MaxNodes < 1 {
		return fmt.Errorf("RISKSCOPE_MAX_NODES must be at least 1, got %d", c.MaxNodes)
	}
	if c.Workers < 1 {
		return fmt.Errorf("RISKSCOPE_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.ProfileName == "" {
		return fmt.Errorf("RISKSCOPE_PROFILE must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "true" || v == "1" || v == "yes"
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}
