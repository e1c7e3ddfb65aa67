// Package format styles the human-facing CLI output lines.
package format

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleBold    = lipgloss.NewStyle().Bold(true)
)

// Success renders s in the success color.
func Success(s string) string { return styleSuccess.Render(s) }

// Dim renders s de-emphasized.
func Dim(s string) string { return styleDim.Render(s) }

// Bold renders s bold.
func Bold(s string) string { return styleBold.Render(s) }

// Hours renders an hours value bold with two decimals.
func Hours(v float64) string { return styleBold.Render(fmt.Sprintf("%.2f", v)) }
