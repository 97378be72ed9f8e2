package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mikhail/content-planner/internal/config"
	"github.com/mikhail/content-planner/internal/extraction"
	"github.com/mikhail/content-planner/internal/prompts"
	"github.com/mikhail/content-planner/internal/types"
)

// Extractor is the LLM-backed seed extraction strategy. It asks the model for
// candidate seeds and then verifies each one against the source records:
// seeds whose hook or insight cannot be traced to their source text are
// dropped, never repaired. Under-filling a batch always beats inventing
// ungrounded seeds.
type Extractor struct {
	Client Client
	// Clock supplies seed creation timestamps; defaults to time.Now
	Clock func() time.Time
}

// extractedSeed is the JSON shape the model is asked to return
type extractedSeed struct {
	Title    string `json:"title"`
	Hook     string `json:"hook"`
	Insight  string `json:"insight"`
	SourceID string `json:"source_id"`
	Format   string `json:"format"`
	PillarID string `json:"pillar_id"`
}

// Extract implements extraction.Extractor
func (e *Extractor) Extract(ctx context.Context, records []types.SourceRecord, cfg *config.Config) ([]types.Seed, error) {
	if len(records) == 0 {
		return nil, &extraction.NoMaterialError{}
	}

	raw, err := e.Client.GenerateJSON(ctx, buildPrompt(records, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to extract seeds via LLM: %w", err)
	}

	var extracted []extractedSeed
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		return nil, fmt.Errorf("failed to parse LLM seed JSON: %w", err)
	}

	recordByID := make(map[string]*types.SourceRecord, len(records))
	for i := range records {
		recordByID[records[i].ID] = &records[i]
	}
	pillarIDs := make(map[string]bool, len(cfg.Pillars))
	for _, p := range cfg.Pillars {
		pillarIDs[p.ID] = true
	}

	now := time.Now
	if e.Clock != nil {
		now = e.Clock
	}
	createdAt := now().UTC()

	seeds := make([]types.Seed, 0, len(extracted))
	for _, x := range extracted {
		record, ok := recordByID[x.SourceID]
		if !ok {
			continue // cites a record not in the batch
		}
		if !extraction.Grounded(record.RawText, x.Hook) || !extraction.Grounded(record.RawText, x.Insight) {
			continue // made up, not extracted
		}

		format := types.Format(x.Format)
		if !types.ValidFormat(format) {
			format = types.FormatPost
		}
		pillarID := x.PillarID
		if !pillarIDs[pillarID] {
			pillarID = types.PillarUnclassified
		}

		seeds = append(seeds, types.Seed{
			ID:              extraction.SeedID(record.ID, len(seeds), x.Hook+"\n"+x.Insight),
			Title:           x.Title,
			Hook:            x.Hook,
			Insight:         x.Insight,
			SourceID:        record.ID,
			SourceOrigin:    record.OriginName,
			SuggestedFormat: format,
			PillarID:        pillarID,
			CreatedAt:       createdAt,
			Status:          types.StatusCandidate,
			InterestScore:   1.0 - float64(len(seeds))*0.01, // model returns best-first
		})
		if len(seeds) >= cfg.Extractor.MaxSeeds {
			break
		}
	}

	if len(seeds) == 0 {
		return nil, &extraction.NoMaterialError{}
	}
	return seeds, nil
}

// buildPrompt assembles the extraction prompt with the pillar taxonomy, the
// tone note, and every source record delimited the way the model can cite
func buildPrompt(records []types.SourceRecord, cfg *config.Config) string {
	var sb strings.Builder

	rules := prompts.MustGet("extraction.json", "seed_rules")
	sb.WriteString(prompts.Format(rules, map[string]string{
		"MaxSeeds": strconv.Itoa(cfg.Extractor.MaxSeeds),
	}))
	if cfg.Voice.ToneNote != "" {
		fmt.Fprintf(&sb, "- Voice: %s\n", cfg.Voice.ToneNote)
	}

	sb.WriteString("\nPILLARS:\n")
	for _, p := range cfg.Pillars {
		fmt.Fprintf(&sb, "- %s: %s\n", p.ID, p.Name)
	}

	for _, r := range records {
		fmt.Fprintf(&sb, "\n=== SOURCE %s (%s, %s) ===\n%s\n", r.ID, r.Kind, r.OriginName, r.RawText)
	}

	return sb.String()
}
