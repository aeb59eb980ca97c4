// Package batch runs many per-seed neighborhood analyses concurrently.
// Seeds are independent, so the only coordination is a bounded worker pool
// and a shared result slice; one seed's failure never aborts the run.
package batch

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fraudgraph/riskscope/internal/analysis"
	"github.com/fraudgraph/riskscope/internal/explore"
	"github.com/fraudgraph/riskscope/internal/model"
)

// DefaultWorkers bounds batch concurrency when the caller does not. Sized
// for a modest graph-store session pool.
const DefaultWorkers = 8

// Report summarizes how a batch run went.
type Report struct {
	Requested int `json:"requested"`
	Sampled   int `json:"sampled"`
	Analyzed  int `json:"analyzed"`
	Failed    int `json:"failed"`
	NotFound  int `json:"not_found"`
	Truncated int `json:"truncated"`
}

// Runner dispatches per-seed analyses across a bounded worker pool.
type Runner struct {
	analyzer *analysis.Analyzer
	workers  int
	logger   *slog.Logger
}

// NewRunner creates a Runner; workers <= 0 selects DefaultWorkers.
func NewRunner(analyzer *analysis.Analyzer, workers int) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{
		analyzer: analyzer,
		workers:  workers,
		logger:   slog.Default().With("component", "batch"),
	}
}

// AnalyzeGroup analyzes every seed (after an optional random sample cap,
// sampleSize <= 0 meaning no cap) and assembles the surviving analyses into
// a named group. Per-seed failures are counted and skipped: a missing seed
// or a store error shrinks the sample, it does not abort the batch. Context
// cancellation stops the run at seed granularity; analyses completed before
// cancellation are returned alongside the context error.
func (r *Runner) AnalyzeGroup(ctx context.Context, groupName string, seeds []model.Seed, sampleSize int) (model.GroupAnalysisResult, Report, error) {
	report := Report{Requested: len(seeds)}

	if sampleSize > 0 && len(seeds) > sampleSize {
		seeds = sampleSeeds(seeds, sampleSize)
		r.logger.Info("sampled seeds for analysis", "group", groupName, "sample", sampleSize, "requested", report.Requested)
	}
	report.Sampled = len(seeds)

	results := make([]*model.UIDNeighborhoodAnalysis, len(seeds))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, seed := range seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			uidAnalysis, err := r.analyzer.AnalyzeUID(gctx, seed.UIDKey)
			if err != nil {
				// Cancellation propagates; everything else is contained to
				// this seed.
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				mu.Lock()
				report.Failed++
				if errors.Is(err, explore.ErrSeedNotFound) {
					report.NotFound++
				}
				mu.Unlock()
				r.logger.Warn("skipping seed", "group", groupName, "uid", seed.UIDKey, "error", err)
				return nil
			}

			// Blacklist membership comes from seed discovery; the store
			// lookup inside AnalyzeUID agrees on a consistent snapshot but
			// the seed list is authoritative for group assignment.
			uidAnalysis.IsBlacklisted = uidAnalysis.IsBlacklisted || seed.IsBlacklisted

			mu.Lock()
			results[i] = &uidAnalysis
			report.Analyzed++
			if uidAnalysis.Truncated {
				report.Truncated++
			}
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()

	group := model.GroupAnalysisResult{
		GroupName:   groupName,
		UIDAnalyses: make([]model.UIDNeighborhoodAnalysis, 0, len(seeds)),
	}
	for _, res := range results {
		if res != nil {
			group.UIDAnalyses = append(group.UIDAnalyses, *res)
		}
	}

	r.logger.Info("batch analysis complete",
		"group", groupName,
		"analyzed", report.Analyzed,
		"failed", report.Failed,
		"truncated", report.Truncated)

	// Partial results accumulated before cancellation remain valid and
	// exportable, so they are returned alongside the error.
	return group, report, err
}

// sampleSeeds picks n seeds uniformly without replacement, leaving the
// input untouched.
func sampleSeeds(seeds []model.Seed, n int) []model.Seed {
	shuffled := make([]model.Seed, len(seeds))
	copy(shuffled, seeds)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
