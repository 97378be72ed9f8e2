package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/extraction"
	"github.com/mikhail/content-planner/internal/history"
	"github.com/mikhail/content-planner/internal/llm"
	"github.com/mikhail/content-planner/internal/schemas"
	"github.com/mikhail/content-planner/internal/types"
)

// loadInputs reads a JSON array of raw inputs from a file
func loadInputs(path string) ([]types.RawInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	var inputs []types.RawInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return inputs, nil
}

// loadHistorySnapshot loads the publish history from a file, or from the
// configured database when no file is given. Both absent means empty history.
func loadHistorySnapshot(ctx context.Context, path string, cfg *config.Config) (*types.PublishHistory, error) {
	if path != "" {
		return history.LoadSnapshot(path)
	}
	if cfg.DatabaseURL == "" {
		return &types.PublishHistory{}, nil
	}

	store, err := history.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -cfg.Dedup.LookbackDays)
	return store.SnapshotSince(ctx, cutoff)
}

// buildExtractor selects the extraction strategy from configuration.
// The returned closer is nil for the heuristic strategy.
func buildExtractor(ctx context.Context, cfg *config.Config) (extraction.Extractor, func() error, error) {
	if cfg.Extractor.Strategy != "llm" {
		return &extraction.HeuristicExtractor{}, nil, nil
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	client, err := llm.NewGeminiClient(ctx, apiKey, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return &llm.Extractor{Client: client}, client.Close, nil
}

// writeJSONArtifact marshals v to an output file, creating parent directories,
// and validates it against the named schema. Validation is a safety check, not
// a requirement: failures are warnings.
func writeJSONArtifact(path string, v any, schemaName string) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaName))
	if schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, jsonOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	return nil
}
