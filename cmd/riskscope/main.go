package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fraudgraph/riskscope/internal/config"
	"github.com/fraudgraph/riskscope/internal/database"
	"github.com/fraudgraph/riskscope/internal/scoring/profile"
	"github.com/fraudgraph/riskscope/profiles"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	verbose bool
	cfg     *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riskscope",
	Short: "Fraud-risk analysis over the shared-artifact identity graph",
	Long: `riskscope explores the k-hop neighborhoods of accounts in a Neo4j
snapshot of the shared-artifact graph, classifies the artifacts it finds,
and turns them into risk scores and group statistics. It serves the same
engine over MCP and as one-shot CLI runs.`,
	Version:      Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		if err := godotenv.Load(); err != nil {
			slog.Debug("no .env file loaded", "error", err)
		}

		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.SetVersionTemplate(`riskscope {{.Version}}
Build time: ` + BuildTime + `
`)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scoreCmd)
}

// loadProfiles wires the embedded profile files into the registry. The
// profiles directory on disk is only consulted when the binary was built
// without embedded profiles.
func loadProfiles() (*profile.Registry, error) {
	profile.EmbeddedFS = profiles.ConfigFiles
	registry := profile.NewRegistry("profiles/config")
	if err := registry.LoadProfiles(); err != nil {
		return nil, err
	}
	if registry.ProfileCount() == 0 {
		return nil, fmt.Errorf("no scoring profiles available")
	}
	return registry, nil
}

// connect opens the graph store for the duration of one command.
func connect(ctx context.Context) (*database.Neo4jService, error) {
	service, err := database.NewNeo4jService(ctx, cfg.URI, cfg.Username, cfg.Password, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.URI, err)
	}
	return service, nil
}
