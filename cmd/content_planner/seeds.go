package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/history"
	"github.com/mikhail/content-planner/internal/observability"
	"github.com/mikhail/content-planner/internal/pipeline"
	"github.com/mikhail/content-planner/internal/rendering"
)

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "Extract content seeds from raw records",
	Long:  "Runs the extraction pipeline over a batch of raw records: ingest, seed extraction, voice filtering, and deduplication against publish history. Produces a SeedBatch JSON and a rendered seed list.",
	RunE:  runSeeds,
}

var (
	seedsConfig    string
	seedsInput     string
	seedsOutput    string
	seedsHistory   string
	seedsDismissed string
	seedsWorkers   int
	seedsVerbose   bool
	seedsAudit     bool
)

func init() {
	seedsCmd.Flags().StringVarP(&seedsConfig, "config", "c", "", "Path to config JSON file (required)")
	seedsCmd.Flags().StringVarP(&seedsInput, "input", "i", "", "Path to raw inputs JSON file (required)")
	seedsCmd.Flags().StringVarP(&seedsOutput, "out", "o", "", "Path to output SeedBatch JSON file (required)")
	seedsCmd.Flags().StringVar(&seedsHistory, "history", "", "Path to publish history snapshot JSON (defaults to the configured database)")
	seedsCmd.Flags().StringVar(&seedsDismissed, "dismissed", "", "Path to dismissed seeds JSON file")
	seedsCmd.Flags().IntVar(&seedsWorkers, "workers", 1, "Voice scoring worker count")
	seedsCmd.Flags().BoolVarP(&seedsVerbose, "verbose", "v", false, "Print detailed stage output")
	seedsCmd.Flags().BoolVar(&seedsAudit, "audit", false, "Include rejected seeds in rendered output")

	if err := seedsCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}
	if err := seedsCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := seedsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(seedsCmd)
}

func runSeeds(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// 1. Load configuration
	cfg, err := config.LoadConfig(seedsConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Load raw inputs and the history snapshot
	inputs, err := loadInputs(seedsInput)
	if err != nil {
		return err
	}
	hist, err := loadHistorySnapshot(ctx, seedsHistory, cfg)
	if err != nil {
		return err
	}

	var dismissed *history.Dismissed
	if seedsDismissed != "" {
		dismissed, err = history.LoadDismissed(seedsDismissed)
		if err != nil {
			return err
		}
	}

	// 3. Select extraction strategy
	extractor, closer, err := buildExtractor(ctx, cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}

	// 4. Run the pipeline (no planning)
	result, err := pipeline.Run(ctx, inputs, cfg, pipeline.Options{
		Extractor: extractor,
		History:   hist,
		Dismissed: dismissed,
		Workers:   seedsWorkers,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	for _, warn := range result.Warnings {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v\n", warn)
	}

	if seedsVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSourceMaterial(result.Metadata)
		printer.PrintSkipped(result.Skipped)
		printer.PrintSeedBatch(result.Batch)
		printer.PrintPool(result.Pool)
	}

	// 5. Write the batch artifact and validate it against the schema
	if err := writeJSONArtifact(seedsOutput, result.Batch, "seed_batch.schema.json"); err != nil {
		return err
	}

	// 6. Render the batch to stdout
	fmt.Fprintln(os.Stdout, rendering.RenderSeedBatch(result.Batch, seedsAudit))

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d seeds (%d approved) to %s\n",
		len(result.Batch.Seeds), len(result.Pool), seedsOutput)

	return nil
}
