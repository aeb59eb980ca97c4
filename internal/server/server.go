// Package server wires the analysis engine, graph store and scoring
// profiles into an MCP server.
package server

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/fraudgraph/riskscope/internal/analytics"
	"github.com/fraudgraph/riskscope/internal/config"
	"github.com/fraudgraph/riskscope/internal/database"
	"github.com/fraudgraph/riskscope/internal/scoring/profile"
)

const serverName = "riskscope"

// Version is overridden at build time via -ldflags.
var Version = "dev"

// RiskMCPServer exposes the neighborhood analysis engine over MCP.
type RiskMCPServer struct {
	MCPServer *server.MCPServer
	config    *config.Config
	dbService database.Service
	anService analytics.Service
	profiles  *profile.Registry
}

// NewServer assembles the server and registers every enabled tool.
func NewServer(cfg *config.Config, dbService database.Service, anService analytics.Service, profiles *profile.Registry) (*RiskMCPServer, error) {
	s := &RiskMCPServer{
		MCPServer: server.NewMCPServer(serverName, Version),
		config:    cfg,
		dbService: dbService,
		anService: anService,
		profiles:  profiles,
	}
	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return s, nil
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *RiskMCPServer) ServeStdio() error {
	s.anService.EmitEvent(s.anService.NewStartupEvent(analytics.StartupEventInfo{
		Version:   Version,
		Transport: "stdio",
		ReadOnly:  s.config.ReadOnly,
	}))
	slog.Info("starting MCP server over stdio",
		"version", Version,
		"readOnly", s.config.ReadOnly,
		"profiles", s.profiles.ProfileCount())
	return server.ServeStdio(s.MCPServer)
}
