// Package planning selects and schedules approved seeds into weekly plan slots.
package planning

import "fmt"

// InsufficientSeedsError reports that the pool could not fill every slot.
// Non-fatal: the partial plan is valid and expected alongside this error.
type InsufficientSeedsError struct {
	Unfilled int
}

func (e *InsufficientSeedsError) Error() string {
	return fmt.Sprintf("insufficient seeds: %d slots left unassigned", e.Unfilled)
}

// BelowMinimumError reports a plan with fewer picks than the configured weekly
// minimum. Non-fatal, reported as a warning alongside the plan.
type BelowMinimumError struct {
	Picked  int
	Minimum int
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("planned %d picks, below the configured minimum of %d", e.Picked, e.Minimum)
}
