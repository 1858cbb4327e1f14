package cargo

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/elfgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.ProgramBuilder using `cargo build-sbf`.
type Builder struct {
	log   ports.Logger
	cargo string
}

// NewBuilder creates a program builder invoking cargo from PATH.
func NewBuilder(log ports.Logger) *Builder {
	return &Builder{log: log, cargo: "cargo"}
}

// Build compiles the program whose manifest lives at manifestPath and
// deposits the artifact in outDir. Toolchain output streams into the span
// carried by ctx when one is present, otherwise into the logger.
func (b *Builder) Build(ctx context.Context, manifestPath, outDir string) error {
	cmd := exec.CommandContext(ctx, b.cargo, "build-sbf", //nolint:gosec // paths are provided by user
		"--manifest-path", manifestPath,
		"--sbf-out-dir", outDir,
	)

	if span, ok := ports.SpanFromContext(ctx); ok {
		cmd.Stdout = span
		cmd.Stderr = span
	} else {
		cmd.Stdout = &logWriter{logger: b.log}
		cmd.Stderr = &logWriter{logger: b.log}
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(
			zerr.Wrap(err, "build command failed"),
			"exit_code", exitCode),
			"manifest_path", manifestPath,
		)
	}
	return nil
}

// logWriter forwards subprocess output to the logger line by line.
// Write may be called with partial lines; that is acceptable for build logs.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		w.logger.Info(line)
	}
	return len(p), nil
}

// Ensure Builder satisfies the interface.
var _ ports.ProgramBuilder = (*Builder)(nil)
