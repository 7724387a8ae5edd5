// Package tui renders the tool's terminal output: banner, styled topology
// diagnostics and markdown reports.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riglab/dembones/pkg/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fbbf24"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f87171"))
	dimStyle    = lipgloss.NewStyle().Faint(true)

	// ErrorStyle renders operator-facing error lines.
	ErrorStyle = failStyle
	// SuccessStyle renders operator-facing success lines.
	SuccessStyle = okStyle
)

// RenderTopology formats a topology comparison as an aligned two-row table
// with a MATCHED / NOT MATCHED verdict.
func RenderTopology(report domain.TopologyReport) string {
	var b strings.Builder

	rows := [][]string{
		{"mesh", "verts", "faces", "edges"},
		{report.Source.Name,
			fmt.Sprint(report.Source.Signature.Vertices),
			fmt.Sprint(report.Source.Signature.Faces),
			fmt.Sprint(report.Source.Signature.Edges)},
		{report.Target.Name,
			fmt.Sprint(report.Target.Signature.Vertices),
			fmt.Sprint(report.Target.Signature.Faces),
			fmt.Sprint(report.Target.Signature.Edges)},
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for r, row := range rows {
		for i, cell := range row {
			padded := fmt.Sprintf("%-*s", widths[i], cell)
			if r == 0 {
				b.WriteString(headerStyle.Render(padded))
			} else {
				b.WriteString(cellStyle.Render(padded))
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	if report.Detail != "" {
		b.WriteString(dimStyle.Render(report.Detail))
		b.WriteString("\n")
	}
	if report.Match {
		b.WriteString(okStyle.Render("MATCHED"))
	} else {
		b.WriteString(failStyle.Render("NOT MATCHED"))
	}
	b.WriteString("\n")

	return b.String()
}
