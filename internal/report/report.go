// Package report writes the markdown work report.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hochfrequenz/work-report/internal/hours"
)

// Total sums the hours of all tasks.
func Total(tasks []hours.Task) float64 {
	total := 0.0
	for _, t := range tasks {
		total += t.Hours
	}
	return total
}

// Render produces the report content for the given tasks.
func Render(tasks []hours.Task) string {
	var b strings.Builder
	b.WriteString("# Work Report\n\n")
	b.WriteString("## Task Summary\n\n")
	if len(tasks) > 0 {
		for _, t := range tasks {
			fmt.Fprintf(&b, "- %s → %.2f hours\n", t.Description, t.Hours)
		}
	} else {
		b.WriteString("- No tasks provided.\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "**Total Hours:** %.2f\n", Total(tasks))
	return b.String()
}

// Write creates dir (recursively, idempotent), overwrites the report file in
// it, and returns the written path.
func Write(dir, filename string, tasks []hours.Task) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(Render(tasks)), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
