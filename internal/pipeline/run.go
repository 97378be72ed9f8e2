// Package pipeline orchestrates the batch run: ingest, extract, voice filter,
// dedup, and optionally plan. Stages run sequentially over a bounded batch;
// per-seed voice scoring may fan out across workers with a deterministic
// re-join.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/dedup"
	"github.com/mikhail/content-planner/internal/extraction"
	"github.com/mikhail/content-planner/internal/history"
	"github.com/mikhail/content-planner/internal/ingestion"
	"github.com/mikhail/content-planner/internal/planning"
	"github.com/mikhail/content-planner/internal/types"
	"github.com/mikhail/content-planner/internal/voice"
)

// RejectReasonDismissed marks seeds excluded because the user dismissed them
const RejectReasonDismissed = "dismissed"

// Options configures a pipeline run. Zero values select the deterministic
// defaults: heuristic extractor, rubric scorer, empty history, no parallelism.
type Options struct {
	Extractor extraction.Extractor
	Scorer    voice.Scorer
	History   *types.PublishHistory
	Dismissed *history.Dismissed
	// Workers bounds voice-scoring parallelism; <=1 runs sequentially
	Workers int
	// BuildPlan schedules the surviving pool into the configured slots
	BuildPlan bool
	// Now supplies the run timestamp; defaults to time.Now
	Now func() time.Time
}

// Result carries the outputs of a run, including partial results gathered
// before a batch-fatal error.
type Result struct {
	Records []types.SourceRecord
	// Metadata summarizes the ingested material (volume, dominant script)
	Metadata *ingestion.Metadata
	Batch    *types.SeedBatch
	// Pool is the deduplicated set of approved seeds handed to the planner
	Pool []types.Seed
	Plan *types.WeeklyPlan
	// Skipped holds per-record errors that did not abort the batch
	Skipped []error
	// Warnings holds non-fatal batch conditions (e.g. an under-filled plan)
	Warnings []error
}

// Run executes the pipeline over raw inputs. Per-record errors are isolated;
// batch-level errors abort before planning and are returned alongside the
// partial result.
func Run(ctx context.Context, inputs []types.RawInput, cfg *config.Config, opts Options) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return &Result{}, err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	extractor := opts.Extractor
	if extractor == nil {
		extractor = &extraction.HeuristicExtractor{Clock: now}
	}
	scorer := opts.Scorer
	if scorer == nil {
		scorer = voice.RubricScorer{}
	}
	hist := opts.History
	if hist == nil {
		hist = &types.PublishHistory{}
	}

	result := &Result{}

	// 1. Ingest: normalize raw inputs, skip empty ones
	records, skipped := ingestion.BuildRecords(inputs)
	result.Records = records
	result.Skipped = skipped
	if len(records) == 0 {
		return result, &extraction.NoMaterialError{}
	}

	texts := make([]string, len(records))
	for i := range records {
		texts[i] = records[i].RawText
	}
	result.Metadata = ingestion.NewMetadata(strings.Join(texts, "\n\n"), len(records))

	// 2. Extract candidate seeds
	seeds, err := extractor.Extract(ctx, records, cfg)
	if err != nil {
		return result, err
	}
	if len(seeds) < cfg.Extractor.MinSeeds {
		result.Warnings = append(result.Warnings, &extraction.ThinBatchError{
			Extracted: len(seeds),
			Minimum:   cfg.Extractor.MinSeeds,
		})
	}

	// 3. Voice filter
	seeds, err = voice.FilterConcurrent(ctx, seeds, scorer, &cfg.Voice, opts.Workers)
	if err != nil {
		return result, err
	}

	// 4. Drop dismissed seeds before dedup sees them. Seed IDs are derived
	// from record content, so IDs recorded against an earlier run still match.
	if opts.Dismissed != nil {
		for i := range seeds {
			if seeds[i].Status == types.StatusApproved && opts.Dismissed.Contains(seeds[i].ID) {
				seeds[i].Status = types.StatusRejected
				seeds[i].RejectReason = RejectReasonDismissed
			}
		}
	}

	// 5. Dedup within batch and against the history snapshot
	seeds = dedup.Process(seeds, hist, cfg.Dedup, now().UTC())

	batch := &types.SeedBatch{WeekID: types.WeekID(now().UTC()), Seeds: seeds}
	result.Batch = batch
	result.Pool = batch.Approved()

	if !opts.BuildPlan {
		return result, nil
	}

	// 6. Plan the week from the surviving pool
	plan, err := planning.BuildPlan(result.Pool, cfg, batch.WeekID)
	if plan != nil {
		result.Plan = plan
		markScheduled(batch, plan)
		if plan.FilledCount() < cfg.Planner.MinPicks {
			result.Warnings = append(result.Warnings, &planning.BelowMinimumError{
				Picked:  plan.FilledCount(),
				Minimum: cfg.Planner.MinPicks,
			})
		}
	}
	if err != nil {
		if insufficient, ok := err.(*planning.InsufficientSeedsError); ok {
			result.Warnings = append(result.Warnings, insufficient)
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// markScheduled reflects plan assignments back into the batch's seed statuses
func markScheduled(batch *types.SeedBatch, plan *types.WeeklyPlan) {
	scheduled := make(map[string]bool)
	for _, a := range plan.Assignments {
		if a.Seed != nil {
			scheduled[a.Seed.ID] = true
		}
	}
	for i := range batch.Seeds {
		if scheduled[batch.Seeds[i].ID] {
			batch.Seeds[i].Status = types.StatusScheduled
		}
	}
}
