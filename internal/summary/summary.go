// Package summary renders the range-hours markdown comment.
package summary

import (
	"fmt"
	"strings"

	"github.com/hochfrequenz/work-report/internal/timerange"
)

// Marker identifies comments published by this tool. It must stay stable
// across versions so re-runs find the comment they posted before.
const Marker = "<!-- range-hours-summary -->"

const footer = "_This comment is auto-updated by the repository workflow._"

// Build renders the comment body for a range. When exact is non-nil the body
// carries the exact total; otherwise it carries the three-point estimate
// derived from dayCount and the given hours-per-day rates.
func Build(rng timerange.Range, workdaysOnly bool, dayCount int, exact *float64, lowRate, midRate, highRate float64) string {
	start := rng.Start.Format("2006-01-02")
	end := rng.End.Format("2006-01-02")

	mode := "All calendar days"
	if workdaysOnly {
		mode = "Working days (Mon–Fri)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Range hours summary: %s → %s\n\n", start, end)
	b.WriteString(Marker + "\n\n")
	fmt.Fprintf(&b, "**%s counted between %s and %s (inclusive).**\n\n", mode, start, end)
	fmt.Fprintf(&b, "Total counted days: %d\n\n", dayCount)

	if exact != nil {
		fmt.Fprintf(&b, "**Exact total hours:** **%.2f hours**\n\n", *exact)
	} else {
		est := timerange.EstimateFor(dayCount, lowRate, midRate, highRate)
		fmt.Fprintf(&b, "Estimated totals (using your daily range %g–%g h/day):\n\n", lowRate, highRate)
		fmt.Fprintf(&b, "- %.1f h/day → **%.2f hours**\n", lowRate, est.Low)
		fmt.Fprintf(&b, "- %.1f h/day → **%.2f hours** (recommended midpoint)\n", midRate, est.Mid)
		fmt.Fprintf(&b, "- %.1f h/day → **%.2f hours**\n\n", highRate, est.High)
	}

	b.WriteString(footer)
	return b.String()
}
