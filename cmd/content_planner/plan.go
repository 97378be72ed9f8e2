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

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a weekly publishing plan",
	Long:  "Runs the full pipeline and schedules the surviving seed pool into the configured channel slots, maximizing pillar and format variety. Partial plans are valid: unfilled slots are reported, never silently filled.",
	RunE:  runPlan,
}

var (
	planConfig    string
	planInput     string
	planOutput    string
	planHistory   string
	planDismissed string
	planWorkers   int
	planVerbose   bool
)

func init() {
	planCmd.Flags().StringVarP(&planConfig, "config", "c", "", "Path to config JSON file (required)")
	planCmd.Flags().StringVarP(&planInput, "input", "i", "", "Path to raw inputs JSON file (required)")
	planCmd.Flags().StringVarP(&planOutput, "out", "o", "", "Path to output WeeklyPlan JSON file (required)")
	planCmd.Flags().StringVar(&planHistory, "history", "", "Path to publish history snapshot JSON (defaults to the configured database)")
	planCmd.Flags().StringVar(&planDismissed, "dismissed", "", "Path to dismissed seeds JSON file")
	planCmd.Flags().IntVar(&planWorkers, "workers", 1, "Voice scoring worker count")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print detailed stage output")

	if err := planCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}
	if err := planCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}
	if err := planCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(planConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	inputs, err := loadInputs(planInput)
	if err != nil {
		return err
	}
	hist, err := loadHistorySnapshot(ctx, planHistory, cfg)
	if err != nil {
		return err
	}

	var dismissed *history.Dismissed
	if planDismissed != "" {
		dismissed, err = history.LoadDismissed(planDismissed)
		if err != nil {
			return err
		}
	}

	extractor, closer, err := buildExtractor(ctx, cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}

	result, err := pipeline.Run(ctx, inputs, cfg, pipeline.Options{
		Extractor: extractor,
		History:   hist,
		Dismissed: dismissed,
		Workers:   planWorkers,
		BuildPlan: true,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	for _, warn := range result.Warnings {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v\n", warn)
	}

	if planVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSourceMaterial(result.Metadata)
		printer.PrintSkipped(result.Skipped)
		printer.PrintSeedBatch(result.Batch)
		printer.PrintPool(result.Pool)
		printer.PrintPlan(result.Plan)
	}

	if err := writeJSONArtifact(planOutput, result.Plan, "weekly_plan.schema.json"); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, rendering.RenderWeeklyPlan(result.Plan))

	_, _ = fmt.Fprintf(os.Stdout, "Planned %d/%d slots for week %s to %s\n",
		result.Plan.FilledCount(), len(result.Plan.Assignments), result.Plan.WeekID, planOutput)

	return nil
}
