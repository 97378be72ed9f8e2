package ingestion

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/mikhail/content-planner/internal/types"
)

// recordNamespace scopes content-derived record IDs
var recordNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("content-planner/source-record"))

// BuildRecords normalizes raw inputs into SourceRecords ordered by capture time.
// Empty or whitespace-only inputs are skipped and reported as EmptySourceErrors;
// they never abort the batch. Text is otherwise treated as opaque.
func BuildRecords(inputs []types.RawInput) ([]types.SourceRecord, []error) {
	records := make([]types.SourceRecord, 0, len(inputs))
	var skipped []error

	for i, in := range inputs {
		cleaned := CleanText(in.Text)
		if cleaned == "" {
			skipped = append(skipped, &EmptySourceError{OriginName: in.OriginName})
			continue
		}

		records = append(records, types.SourceRecord{
			ID:         recordID(in, i, cleaned),
			OriginName: in.OriginName,
			RawText:    cleaned,
			CapturedAt: in.CapturedAt,
			Kind:       in.Kind,
		})
	}

	// Preserve order of capture regardless of input ordering
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CapturedAt.Before(records[j].CapturedAt)
	})

	return records, skipped
}

// recordID derives a stable identity from the input's content and batch
// position. Re-running over the same inputs reproduces the same record IDs,
// which keeps the seed IDs derived from them stable across runs.
func recordID(in types.RawInput, index int, cleaned string) string {
	data := fmt.Appendf(nil, "%s|%d|%d|%s", in.OriginName, in.CapturedAt.UnixNano(), index, cleaned)
	return uuid.NewSHA1(recordNamespace, data).String()
}
