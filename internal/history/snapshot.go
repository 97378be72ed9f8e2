// Package history loads and stores the publish history the deduplicator and
// planner read. The core pipeline only ever sees a point-in-time snapshot;
// appending happens here, outside a run.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikhail/content-planner/internal/types"
)

// LoadSnapshot reads a PublishHistory snapshot from a JSON file.
// A missing file is an empty history, not an error.
func LoadSnapshot(path string) (*types.PublishHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &types.PublishHistory{}, nil
		}
		return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
	}

	var history types.PublishHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse history JSON: %w", err)
	}
	return &history, nil
}

// SaveSnapshot writes a PublishHistory snapshot to a JSON file
func SaveSnapshot(path string, history *types.PublishHistory) error {
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create history directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file %s: %w", path, err)
	}
	return nil
}
