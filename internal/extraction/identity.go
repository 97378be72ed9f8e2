package extraction

import (
	"fmt"

	"github.com/google/uuid"
)

// seedNamespace scopes content-derived seed IDs
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("content-planner/seed"))

// SeedID derives a seed's identity from its source record and content.
// Identical material yields the same ID on every run, so a dismissal recorded
// against one batch still matches the seed when a later run re-extracts it.
func SeedID(sourceID string, order int, text string) string {
	return uuid.NewSHA1(seedNamespace, fmt.Appendf(nil, "%s|%d|%s", sourceID, order, text)).String()
}
