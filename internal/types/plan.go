package types

import (
	"fmt"
	"time"
)

// PlanSlot is a scheduling unit: this channel publishes on this day in this format
type PlanSlot struct {
	Channel string `json:"channel"`
	Day     string `json:"day"`
	Format  Format `json:"format"`
}

// Key returns a stable identity for the slot within a week
func (s PlanSlot) Key() string {
	return fmt.Sprintf("%s/%s", s.Channel, s.Day)
}

// Assignment pairs a slot with the seed scheduled into it.
// Seed is nil for slots left unassigned.
type Assignment struct {
	Slot PlanSlot `json:"slot"`
	Seed *Seed    `json:"seed,omitempty"`
}

// WeeklyPlan is the final time-boxed publishing plan for one ISO week.
// Invariants: each PlanSlot appears at most once, each Seed appears at most
// once, and every assigned seed has status scheduled.
type WeeklyPlan struct {
	WeekID      string       `json:"week_id"`
	Assignments []Assignment `json:"assignments"`
}

// FilledCount returns the number of assignments carrying a seed
func (p *WeeklyPlan) FilledCount() int {
	n := 0
	for _, a := range p.Assignments {
		if a.Seed != nil {
			n++
		}
	}
	return n
}

// WeekID formats a time as an ISO week identifier like 2026-W36
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
