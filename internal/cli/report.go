package cli

import (
	"fmt"
	"strings"

	"github.com/riglab/dembones/pkg/domain"
)

// BuildRunReport formats a run outcome as markdown for the glamour renderer.
func BuildRunReport(result domain.RunResult, job domain.SolveJob) string {
	var b strings.Builder

	if result.Success {
		b.WriteString("# Decomposition complete\n\n")
	} else {
		b.WriteString("# Decomposition failed\n\n")
	}
	b.WriteString(result.Message)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "| parameter | value |\n|---|---|\n")
	fmt.Fprintf(&b, "| source mesh | `%s` |\n", job.SourceMesh)
	fmt.Fprintf(&b, "| target mesh | `%s` |\n", job.TargetMesh)
	fmt.Fprintf(&b, "| frame range | %d - %d |\n", job.Params.StartFrame, job.Params.EndFrame)
	fmt.Fprintf(&b, "| global iterations | %d |\n", job.Params.GlobalIters)
	fmt.Fprintf(&b, "| bones | %d |\n", job.Params.NumBones)

	if result.Output != "" {
		b.WriteString("\n## Solver log\n\n```\n")
		b.WriteString(result.Output)
		b.WriteString("\n```\n")
	}

	return b.String()
}

// BuildValidationReport formats validation errors as markdown.
func BuildValidationReport(errs []string) string {
	var b strings.Builder
	b.WriteString("# Validation errors\n\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e)
		b.WriteString("\n")
	}
	return b.String()
}
