package history

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Dismissed is the set of seed IDs a user has dismissed. Dismissed seeds never
// enter the planning pool.
type Dismissed struct {
	IDs map[string]bool
}

// dismissedFile is the on-disk shape of the dismissed set
type dismissedFile struct {
	Dismissed []string `json:"dismissed"`
}

// LoadDismissed reads the dismissed-seed set from a JSON file.
// A missing file is an empty set.
func LoadDismissed(path string) (*Dismissed, error) {
	d := &Dismissed{IDs: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, fmt.Errorf("failed to read dismissed file %s: %w", path, err)
	}

	var f dismissedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse dismissed JSON: %w", err)
	}
	for _, id := range f.Dismissed {
		d.IDs[id] = true
	}
	return d, nil
}

// Save writes the dismissed set back to disk, sorted for stable diffs
func (d *Dismissed) Save(path string) error {
	ids := make([]string, 0, len(d.IDs))
	for id := range d.IDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.MarshalIndent(dismissedFile{Dismissed: ids}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dismissed set: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dismissed file %s: %w", path, err)
	}
	return nil
}

// Add marks a seed ID as dismissed; returns true if newly added
func (d *Dismissed) Add(id string) bool {
	if d.IDs[id] {
		return false
	}
	d.IDs[id] = true
	return true
}

// Contains reports whether the seed ID is dismissed
func (d *Dismissed) Contains(id string) bool {
	return d.IDs[id]
}
