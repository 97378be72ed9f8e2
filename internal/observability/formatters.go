// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mikhail/content-planner/internal/ingestion"
	"github.com/mikhail/content-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSourceMaterial outputs a summary of the ingested batch
func (p *Printer) PrintSourceMaterial(md *ingestion.Metadata) {
	if md == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records: %d\n", md.RecordCount))
	sb.WriteString(fmt.Sprintf("Words:   %d\n", md.WordCount))
	if md.Language != "" {
		sb.WriteString(fmt.Sprintf("Script:  %s\n", md.Language))
	}
	sb.WriteString(fmt.Sprintf("Digest:  %.12s", md.Hash))

	p.printBox("SOURCE MATERIAL", sb.String())
}

// PrintSeedBatch outputs a summary of extracted seeds with voice scores
func (p *Printer) PrintSeedBatch(batch *types.SeedBatch) {
	if batch == nil || len(batch.Seeds) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total seeds: %d\n\n", len(batch.Seeds)))

	count := min(len(batch.Seeds), maxItemsToShow)
	for i := 0; i < count; i++ {
		seed := batch.Seeds[i]
		title := seed.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    %s / %s  voice %.2f", seed.PillarID, seed.SuggestedFormat, seed.VoiceScore))
		if seed.Status == types.StatusRejected {
			sb.WriteString(fmt.Sprintf("  ✗ %s", seed.RejectReason))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(batch.Seeds) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more seeds", len(batch.Seeds)-maxItemsToShow))
	}

	p.printBox("EXTRACTED SEEDS", sb.String())
}

// PrintPool outputs the deduplicated pool handed to the planner
func (p *Printer) PrintPool(pool []types.Seed) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Approved after dedup: %d\n", len(pool)))

	pillars := make(map[string]int)
	for _, seed := range pool {
		pillars[seed.PillarID]++
	}
	if len(pillars) > 0 {
		sb.WriteString("\nPillars:\n")
		for _, seed := range pool {
			if n, ok := pillars[seed.PillarID]; ok {
				sb.WriteString(fmt.Sprintf("  • %s (%d)\n", seed.PillarID, n))
				delete(pillars, seed.PillarID)
			}
		}
	}

	p.printBox("PLANNING POOL", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlan outputs the weekly plan with unfilled slots marked
func (p *Printer) PrintPlan(plan *types.WeeklyPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Week %s: %d/%d slots filled\n\n", plan.WeekID, plan.FilledCount(), len(plan.Assignments)))

	for _, a := range plan.Assignments {
		if a.Seed == nil {
			sb.WriteString(fmt.Sprintf("✗ %s/%s [%s] empty\n", a.Slot.Channel, a.Slot.Day, a.Slot.Format))
			continue
		}
		title := a.Seed.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("✓ %s/%s [%s] %s\n", a.Slot.Channel, a.Slot.Day, a.Slot.Format, title))
	}

	p.printBox("WEEKLY PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkipped outputs per-record errors that were isolated from the batch
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSkipped(skipped []error) {
	if len(skipped) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skipped %d inputs:\n\n", len(skipped)))
	for _, err := range skipped {
		sb.WriteString(fmt.Sprintf("⚠ %v\n", err))
	}

	p.printBox("SKIPPED INPUTS", strings.TrimSuffix(sb.String(), "\n"))
}
