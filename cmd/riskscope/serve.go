package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fraudgraph/riskscope/internal/analytics"
	"github.com/fraudgraph/riskscope/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis tools over MCP on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		registry, err := loadProfiles()
		if err != nil {
			return err
		}

		dbService, err := connect(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := dbService.Close(ctx); err != nil {
				slog.Error("error closing graph store", "error", err)
			}
		}()

		server.Version = Version
		srv, err := server.NewServer(cfg, dbService, analytics.NewAnalyticsService(nil), registry)
		if err != nil {
			return err
		}
		return srv.ServeStdio()
	},
}
