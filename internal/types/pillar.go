package types

// PillarUnclassified is the fallback pillar ID when no configured pillar matches.
const PillarUnclassified = "unclassified"

// ContentPillar is a top-level topic category in the user's content taxonomy.
// The taxonomy is closed and user-defined, typically 3-5 entries.
type ContentPillar struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}
