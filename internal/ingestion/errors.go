package ingestion

import "fmt"

// EmptySourceError indicates a raw input with no usable text.
// It is skippable: the record is logged and dropped, the batch continues.
type EmptySourceError struct {
	OriginName string
}

func (e *EmptySourceError) Error() string {
	return fmt.Sprintf("empty source input: %s", e.OriginName)
}
