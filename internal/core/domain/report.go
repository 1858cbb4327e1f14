package domain

import (
	"fmt"
	"strings"
)

// BuildSuccess records a program that built, together with the deposited
// artifact's resolved path.
type BuildSuccess struct {
	Program      Program
	ArtifactPath string
}

// BuildFailure records a program that failed to build with a human-readable
// detail string (exit status included when available).
type BuildFailure struct {
	Program Program
	Detail  string
}

// BuildReport aggregates the per-program outcomes of one orchestrator run.
// Successes keep the deduplicated candidate order. A non-empty Failures list
// is a valid, non-exceptional outcome.
type BuildReport struct {
	Successes []BuildSuccess
	Failures  []BuildFailure
}

// GenerationResult is the structured outcome of a full pipeline run.
type GenerationResult struct {
	Mode       Mode
	Workspaces []DiscoveredSet
	Report     BuildReport
}

// Programs returns all included programs across workspaces, in workspace order.
func (r GenerationResult) Programs() []Program {
	var out []Program
	for _, ws := range r.Workspaces {
		out = append(out, ws.Included...)
	}
	return out
}

// Listing renders the mode and per-workspace classification, without any
// build outcome. Used when discovery runs on its own.
func (r GenerationResult) Listing() string {
	var b strings.Builder

	plural := "s"
	if len(r.Workspaces) == 1 {
		plural = ""
	}
	fmt.Fprintf(&b, "Mode: %s (%d workspace%s)\n\n", r.Mode, len(r.Workspaces), plural)

	for _, ws := range r.Workspaces {
		fmt.Fprintf(&b, "Workspace: %s\n", ws.Workspace)
		for _, p := range ws.Included {
			fmt.Fprintf(&b, "  + %s\n", p.TargetName)
		}
		for _, p := range ws.Excluded {
			fmt.Fprintf(&b, "  - %s (denied by pattern)\n", p.TargetName)
		}
		if len(ws.Included) == 0 && len(ws.Excluded) == 0 {
			b.WriteString("  (no programs found)\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// String renders the result for humans: mode, per-workspace classification,
// build failures, and a trailing summary.
func (r GenerationResult) String() string {
	var b strings.Builder
	b.WriteString(r.Listing())

	for _, f := range r.Report.Failures {
		fmt.Fprintf(&b, "Build failed: %s: %s\n", f.Program.TargetName, f.Detail)
	}

	if n := len(r.Report.Successes); n > 0 {
		plural := "s"
		if n == 1 {
			plural = ""
		}
		fmt.Fprintf(&b, "Generated bindings for %d program%s\n", n, plural)
	} else {
		b.WriteString("No programs built - generated empty bindings\n")
	}

	return b.String()
}
