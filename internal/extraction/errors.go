package extraction

import "fmt"

// NoMaterialError indicates there was nothing to extract from: every source
// record in the batch was empty. Batch-fatal; the pipeline stops before planning.
type NoMaterialError struct{}

func (e *NoMaterialError) Error() string {
	return "no source material to extract seeds from"
}

// ThinBatchError reports an extraction that produced fewer seeds than the
// configured minimum. Non-fatal: a thin batch still flows through the pipeline.
type ThinBatchError struct {
	Extracted int
	Minimum   int
}

func (e *ThinBatchError) Error() string {
	return fmt.Sprintf("extracted %d seeds, below the configured minimum of %d", e.Extracted, e.Minimum)
}
