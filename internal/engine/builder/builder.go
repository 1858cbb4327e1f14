// Package builder orchestrates program builds, tolerating per-program
// failures and aggregating outcomes into a report.
package builder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/elfgen/internal/core/ports"
)

// Orchestrator runs the build collaborator once per candidate program. A
// failing candidate never aborts the loop; only the inability to stage the
// output directory is a hard error for the whole run.
type Orchestrator struct {
	builder ports.ProgramBuilder
	tracer  ports.Tracer
	log     ports.Logger
}

// NewOrchestrator creates a build orchestrator.
func NewOrchestrator(builder ports.ProgramBuilder, tracer ports.Tracer, log ports.Logger) *Orchestrator {
	return &Orchestrator{builder: builder, tracer: tracer, log: log}
}

// Build compiles every program sequentially, depositing artifacts under
// outRoot, one subdirectory per package. overrides may rename the expected
// artifact stem per program directory. Successes keep the candidate order.
func (o *Orchestrator) Build(ctx context.Context, programs []domain.Program, outRoot string, overrides domain.Overrides) (domain.BuildReport, error) {
	var report domain.BuildReport

	for _, program := range programs {
		outDir := filepath.Join(outRoot, program.PackageName)
		if err := os.MkdirAll(outDir, 0o750); err != nil {
			return domain.BuildReport{}, errors.Join(domain.ErrGeneratedWrite, err)
		}

		artifact := filepath.Join(outDir, artifactFileName(program, overrides))

		// Remove any stale artifact so a failed build cannot masquerade as
		// a fresh one.
		if err := os.Remove(artifact); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return domain.BuildReport{}, errors.Join(domain.ErrGeneratedWrite, err)
		}

		o.log.Info(fmt.Sprintf("building %s", program))
		spanCtx, span := o.tracer.Start(ctx, fmt.Sprintf("build %s", program.TargetName))

		err := o.builder.Build(spanCtx, program.ManifestPath, outDir)
		if err == nil {
			if _, statErr := os.Stat(artifact); statErr != nil {
				err = fmt.Errorf("expected artifact %s not found after build", artifact)
			}
		}
		span.End(err)

		if err != nil {
			o.log.Warn(fmt.Sprintf("build failed for %s: %v", program.TargetName, err))
			report.Failures = append(report.Failures, domain.BuildFailure{
				Program: program,
				Detail:  err.Error(),
			})
			continue
		}

		report.Successes = append(report.Successes, domain.BuildSuccess{
			Program:      program,
			ArtifactPath: artifact,
		})
	}

	return report, nil
}

// artifactFileName resolves the expected artifact name, honoring a
// per-program-directory target override.
func artifactFileName(program domain.Program, overrides domain.Overrides) string {
	if stem, ok := overrides.Targets[program.Dir()]; ok {
		return stem + ".so"
	}
	return program.ArtifactFileName()
}
