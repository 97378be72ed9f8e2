package rendering

import (
	"regexp"
	"strings"

	"github.com/mikhail/content-planner/internal/types"
)

var (
	seedHeaderRe  = regexp.MustCompile(`^\*\*Seed #(\d+): (.*)\*\*$`)
	fieldRe       = regexp.MustCompile(`^\*\*([A-Za-z]+):\*\* (.*)$`)
	planHeaderRe  = regexp.MustCompile(`^\*\*Weekly Plan (.+)\*\*$`)
	channelRe     = regexp.MustCompile(`^\*\*Channel: (.*)\*\*$`)
	planEntryRe   = regexp.MustCompile(`^- \*\*(.+)\*\* \[([a-z]+)\] (.*)$`)
	batchHeaderRe = regexp.MustCompile(`^\*\*Content Seeds (.+)\*\*$`)
)

// ParseSeedBatch parses rendered seed blocks back into a SeedBatch. The parser
// recovers exactly the fields the renderer emits; it exists to keep the
// renderer honest about losslessness.
func ParseSeedBatch(text string) (*types.SeedBatch, error) {
	batch := &types.SeedBatch{}
	var current *types.Seed

	flush := func() {
		if current != nil {
			batch.Seeds = append(batch.Seeds, *current)
			current = nil
		}
	}

	for lineNum, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " ")
		if line == "" {
			continue
		}

		if m := batchHeaderRe.FindStringSubmatch(line); m != nil && current == nil {
			batch.WeekID = m[1]
			continue
		}

		if m := seedHeaderRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &types.Seed{Title: m[2]}
			continue
		}

		m := fieldRe.FindStringSubmatch(line)
		if m == nil {
			return nil, &ParseError{Line: lineNum + 1, Message: "unrecognized line: " + line}
		}
		if current == nil {
			return nil, &ParseError{Line: lineNum + 1, Message: "field before first seed header"}
		}

		switch m[1] {
		case "Hook":
			current.Hook = m[2]
		case "Insight":
			current.Insight = m[2]
		case "Source":
			current.SourceOrigin = m[2]
		case "Format":
			current.SuggestedFormat = types.Format(m[2])
		case "Pillar":
			current.PillarID = m[2]
		case "Rejected":
			current.Status = types.StatusRejected
			current.RejectReason = m[2]
		default:
			return nil, &ParseError{Line: lineNum + 1, Message: "unknown field: " + m[1]}
		}
	}
	flush()

	return batch, nil
}

// ParseWeeklyPlan parses a rendered plan back into a WeeklyPlan. Assigned
// entries recover the seed ID and hook; unassigned slots come back with a nil
// seed.
func ParseWeeklyPlan(text string) (*types.WeeklyPlan, error) {
	plan := &types.WeeklyPlan{}
	channel := ""

	for lineNum, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " ")
		if line == "" {
			continue
		}

		if m := planHeaderRe.FindStringSubmatch(line); m != nil && plan.WeekID == "" {
			plan.WeekID = m[1]
			continue
		}
		if m := channelRe.FindStringSubmatch(line); m != nil {
			channel = m[1]
			continue
		}

		m := planEntryRe.FindStringSubmatch(line)
		if m == nil {
			return nil, &ParseError{Line: lineNum + 1, Message: "unrecognized line: " + line}
		}
		if channel == "" {
			return nil, &ParseError{Line: lineNum + 1, Message: "entry before first channel header"}
		}

		assignment := types.Assignment{
			Slot: types.PlanSlot{Channel: channel, Day: m[1], Format: types.Format(m[2])},
		}
		if m[3] != unassignedMarker {
			id, hook, found := strings.Cut(m[3], " | ")
			if !found {
				return nil, &ParseError{Line: lineNum + 1, Message: "malformed plan entry: " + m[3]}
			}
			assignment.Seed = &types.Seed{ID: id, Hook: hook, Status: types.StatusScheduled}
		}
		plan.Assignments = append(plan.Assignments, assignment)
	}

	if plan.WeekID == "" {
		return nil, &ParseError{Line: 1, Message: "missing weekly plan header"}
	}
	return plan, nil
}
