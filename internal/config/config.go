// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/mikhail/content-planner/internal/types"
)

// Defaults applied when the config file leaves a value unset
const (
	DefaultVoiceThreshold      = 0.5
	DefaultSimilarityThreshold = 0.6
	DefaultLookbackDays        = 14
	DefaultMinSeeds            = 10
	DefaultMaxSeeds            = 15
	DefaultMinPicks            = 3
	DefaultMaxPicks            = 5
)

// VoiceProfile configures the voice filter rubric
type VoiceProfile struct {
	// BannedPhrases are hard red flags; a match always rejects the seed
	BannedPhrases []string `json:"banned_phrases,omitempty"`
	// ClichePhrases are soft red flags that lower the score
	ClichePhrases []string `json:"cliche_phrases,omitempty"`
	// GenericOpeners are question/opener patterns that read as templated
	GenericOpeners []string `json:"generic_openers,omitempty"`
	// ToneNote is a free-form description of the authorial voice
	ToneNote string `json:"tone_note,omitempty"`
	// Threshold is the minimum voice score for approval (0-1). Zero means
	// unset and takes the default; -1 disables score-based rejection so only
	// hard flags reject.
	Threshold float64 `json:"threshold,omitempty" validate:"gte=-1,lte=1"`
}

// DedupSettings configures batch and history deduplication
type DedupSettings struct {
	// SimilarityThreshold above which same-pillar seeds are near-duplicates
	// (0-1). Zero means unset and takes the default; 1 collapses exact
	// duplicates only.
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" validate:"gte=0,lte=1"`
	// LookbackDays is the recency window against publish history. Zero means
	// unset and takes the default; -1 disables recency penalties.
	LookbackDays int `json:"lookback_days,omitempty" validate:"gte=-1"`
}

// PlannerSettings configures weekly plan selection
type PlannerSettings struct {
	MinPicks int `json:"min_picks,omitempty" validate:"gte=0"`
	MaxPicks int `json:"max_picks,omitempty" validate:"gte=0"`
}

// ExtractorSettings configures seed extraction
type ExtractorSettings struct {
	// Strategy selects the extractor implementation: "heuristic" or "llm"
	Strategy string `json:"strategy,omitempty" validate:"omitempty,oneof=heuristic llm"`
	MinSeeds int    `json:"min_seeds,omitempty" validate:"gte=0"`
	MaxSeeds int    `json:"max_seeds,omitempty" validate:"gte=0"`
}

// Config is the immutable per-run configuration passed into each pipeline stage
type Config struct {
	Pillars   []types.ContentPillar `json:"pillars" validate:"required,min=1,dive"`
	Schedule  []types.PlanSlot      `json:"schedule" validate:"required,min=1,dive"`
	Voice     VoiceProfile          `json:"voice"`
	Dedup     DedupSettings         `json:"dedup"`
	Planner   PlannerSettings       `json:"planner"`
	Extractor ExtractorSettings     `json:"extractor"`

	// APIKey is the Gemini API key for the LLM extractor strategy
	APIKey string `json:"api_key,omitempty"`
	// DatabaseURL is the PostgreSQL connection URL for the history store
	DatabaseURL string `json:"database_url,omitempty"`
}

// LoadConfig loads configuration from a JSON file and applies defaults.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills zero-valued settings with documented defaults. Zero is
// treated as unset; a field whose zero value is meaningful documents a
// sentinel (-1) that survives defaulting.
func (c *Config) ApplyDefaults() {
	if c.Voice.Threshold == 0 {
		c.Voice.Threshold = DefaultVoiceThreshold
	}
	if c.Dedup.SimilarityThreshold == 0 {
		c.Dedup.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if c.Dedup.LookbackDays == 0 {
		c.Dedup.LookbackDays = DefaultLookbackDays
	}
	if c.Extractor.Strategy == "" {
		c.Extractor.Strategy = "heuristic"
	}
	if c.Extractor.MinSeeds == 0 {
		c.Extractor.MinSeeds = DefaultMinSeeds
	}
	if c.Extractor.MaxSeeds == 0 {
		c.Extractor.MaxSeeds = DefaultMaxSeeds
	}
	if c.Planner.MinPicks == 0 {
		// A schedule smaller than the default minimum caps it
		c.Planner.MinPicks = min(DefaultMinPicks, len(c.Schedule))
	}
	if c.Planner.MaxPicks == 0 {
		c.Planner.MaxPicks = DefaultMaxPicks
	}
}

// Validate checks that the configuration is complete enough to run a batch.
// A missing pillar taxonomy or slot schedule is fatal: there is no safe default.
func (c *Config) Validate() error {
	if len(c.Pillars) == 0 {
		return &ConfigurationError{Field: "pillars", Message: "pillar taxonomy is required"}
	}
	if len(c.Schedule) == 0 {
		return &ConfigurationError{Field: "schedule", Message: "slot schedule is required"}
	}

	if err := validator.New().Struct(c); err != nil {
		return &ConfigurationError{Field: "config", Message: err.Error()}
	}

	seenPillars := make(map[string]bool)
	for _, p := range c.Pillars {
		if p.ID == "" {
			return &ConfigurationError{Field: "pillars", Message: "pillar with empty id"}
		}
		if seenPillars[p.ID] {
			return &ConfigurationError{Field: "pillars", Message: fmt.Sprintf("duplicate pillar id: %s", p.ID)}
		}
		seenPillars[p.ID] = true
	}

	seenSlots := make(map[string]bool)
	for _, slot := range c.Schedule {
		if slot.Channel == "" || slot.Day == "" {
			return &ConfigurationError{Field: "schedule", Message: "slot with empty channel or day"}
		}
		if !types.ValidFormat(slot.Format) {
			return &ConfigurationError{Field: "schedule", Message: fmt.Sprintf("slot %s has unknown format %q", slot.Key(), slot.Format)}
		}
		if seenSlots[slot.Key()] {
			return &ConfigurationError{Field: "schedule", Message: fmt.Sprintf("duplicate slot: %s", slot.Key())}
		}
		seenSlots[slot.Key()] = true
	}

	if c.Planner.MaxPicks < c.Planner.MinPicks {
		return &ConfigurationError{Field: "planner", Message: "max_picks must be >= min_picks"}
	}
	if c.Planner.MinPicks > len(c.Schedule) {
		return &ConfigurationError{Field: "planner", Message: fmt.Sprintf("min_picks %d exceeds the %d scheduled slots", c.Planner.MinPicks, len(c.Schedule))}
	}
	if c.Extractor.MaxSeeds < c.Extractor.MinSeeds {
		return &ConfigurationError{Field: "extractor", Message: "max_seeds must be >= min_seeds"}
	}

	return nil
}

// PillarByID returns the configured pillar with the given ID, or nil
func (c *Config) PillarByID(id string) *types.ContentPillar {
	for i := range c.Pillars {
		if c.Pillars[i].ID == id {
			return &c.Pillars[i]
		}
	}
	return nil
}
