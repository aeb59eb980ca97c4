package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fraudgraph/riskscope/internal/explore"
	"github.com/fraudgraph/riskscope/internal/scoring"
)

var scoreProfileName string

var scoreCmd = &cobra.Command{
	Use:   "score <uid_key>",
	Short: "Score one account's fraud risk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		uidKey := args[0]

		registry, err := loadProfiles()
		if err != nil {
			return err
		}
		profileCfg, ok := registry.Get(scoreProfileName)
		if !ok {
			return fmt.Errorf("unknown scoring profile %q", scoreProfileName)
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

		explorer, err := explore.NewExplorer(dbService, profileCfg.MaxHops, explore.WithMaxNodes(cfg.MaxNodes))
		if err != nil {
			return err
		}
		scorer, err := scoring.NewScorer(explorer, profileCfg.Table())
		if err != nil {
			return err
		}

		score, contributions, err := scorer.ScoreWithBreakdown(ctx, uidKey)
		if err != nil {
			if errors.Is(err, explore.ErrSeedNotFound) {
				return fmt.Errorf("uid %q not found in the graph", uidKey)
			}
			return err
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			UIDKey        string                 `json:"uid_key"`
			Profile       string                 `json:"profile"`
			Score         float64                `json:"score"`
			Contributions []scoring.Contribution `json:"contributions"`
		}{
			UIDKey:        uidKey,
			Profile:       profileCfg.Name,
			Score:         score,
			Contributions: contributions,
		})
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreProfileName, "profile", "default", "scoring profile to use")
}
