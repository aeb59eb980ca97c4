package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fraudgraph/riskscope/internal/analysis"
	"github.com/fraudgraph/riskscope/internal/batch"
	"github.com/fraudgraph/riskscope/internal/database"
	"github.com/fraudgraph/riskscope/internal/explore"
	"github.com/fraudgraph/riskscope/internal/export"
	"github.com/fraudgraph/riskscope/internal/model"
)

var (
	analyzeGroupName string
	analyzeSeedFile  string
	analyzeSample    int
	analyzeLimit     int
	analyzeCompare   bool
	analyzeOut       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a group of accounts and export group statistics as JSON",
	Long: `Runs the per-uid neighborhood analysis over a group of accounts and
writes a JSON document with the group statistics. Seeds come from a seed
file (one uid_key per line) or, when none is given, from the uid nodes in
the store. With --compare, discovered seeds are split by blacklist status
and the two cohorts are compared hop by hop instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbService, err := connect(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := dbService.Close(ctx); err != nil {
				slog.Error("error closing graph store", "error", err)
			}
		}()

		runCfg := export.RunConfig{
			MaxHops:            cfg.MaxHops,
			IsolationThreshold: cfg.IsolationThreshold,
		}

		var doc any
		if analyzeCompare {
			doc, err = runComparison(ctx, dbService, runCfg)
		} else {
			doc, err = runSingleGroup(ctx, dbService, runCfg)
		}
		if err != nil {
			return err
		}

		if analyzeOut != "" {
			if err := export.WriteFile(analyzeOut, doc); err != nil {
				return err
			}
			slog.Info("wrote analysis document", "path", analyzeOut)
			return nil
		}
		return export.WriteJSON(os.Stdout, doc)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeGroupName, "group", "all", "group name in the output document")
	analyzeCmd.Flags().StringVar(&analyzeSeedFile, "seeds", "", "seed file with one uid_key per line")
	analyzeCmd.Flags().IntVar(&analyzeSample, "sample", 0, "random sample cap per group (0 = analyze every seed)")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 0, "discovery cap when no seed file is given (0 = no cap)")
	analyzeCmd.Flags().BoolVar(&analyzeCompare, "compare", false, "split discovered seeds by blacklist status and compare the cohorts")
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "", "output file (default: stdout)")
}

func newRunner(dbService database.Service) (*batch.Runner, error) {
	explorer, err := explore.NewExplorer(dbService, cfg.MaxHops, explore.WithMaxNodes(cfg.MaxNodes))
	if err != nil {
		return nil, err
	}
	return batch.NewRunner(analysis.NewAnalyzer(explorer, dbService), cfg.Workers), nil
}

func runSingleGroup(ctx context.Context, dbService database.Service, runCfg export.RunConfig) (any, error) {
	var seeds []model.Seed
	var err error
	if analyzeSeedFile != "" {
		if seeds, err = readSeedFile(analyzeSeedFile); err != nil {
			return nil, err
		}
	} else {
		if seeds, err = dbService.ListUIDs(ctx, analyzeLimit); err != nil {
			return nil, err
		}
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds to analyze")
	}

	runner, err := newRunner(dbService)
	if err != nil {
		return nil, err
	}
	group, report, err := runner.AnalyzeGroup(ctx, analyzeGroupName, seeds, analyzeSample)
	if err != nil {
		return nil, err
	}
	slog.Info("group analysis finished",
		"group", analyzeGroupName,
		"analyzed", report.Analyzed,
		"failed", report.Failed,
		"notFound", report.NotFound)

	return export.BuildGroupDocument(group, runCfg), nil
}

func runComparison(ctx context.Context, dbService database.Service, runCfg export.RunConfig) (any, error) {
	discovered, err := dbService.ListUIDs(ctx, analyzeLimit)
	if err != nil {
		return nil, err
	}

	var blacklisted, normal []model.Seed
	for _, seed := range discovered {
		if seed.IsBlacklisted {
			blacklisted = append(blacklisted, seed)
		} else {
			normal = append(normal, seed)
		}
	}
	if len(blacklisted) == 0 || len(normal) == 0 {
		return nil, fmt.Errorf("comparison needs both cohorts: %d blacklisted, %d normal uids discovered",
			len(blacklisted), len(normal))
	}

	runner, err := newRunner(dbService)
	if err != nil {
		return nil, err
	}
	groupA, reportA, err := runner.AnalyzeGroup(ctx, "blacklist", blacklisted, analyzeSample)
	if err != nil {
		return nil, err
	}
	groupB, reportB, err := runner.AnalyzeGroup(ctx, "normal", normal, analyzeSample)
	if err != nil {
		return nil, err
	}
	slog.Info("cohort analyses finished",
		"blacklistAnalyzed", reportA.Analyzed,
		"normalAnalyzed", reportB.Analyzed)

	return export.BuildComparisonDocument(groupA, groupB, runCfg), nil
}

// readSeedFile parses a plain-text seed list: one uid_key per line, blank
// lines and #-comments ignored.
func readSeedFile(path string) ([]model.Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	var seeds []model.Seed
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seeds = append(seeds, model.Seed{UIDKey: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return seeds, nil
}
