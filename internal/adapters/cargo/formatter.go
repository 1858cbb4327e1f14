package cargo

import (
	"context"
	"fmt"
	"os/exec"

	"go.trai.ch/elfgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Formatter implements ports.Formatter using `cargo fmt`. Formatting is
// cosmetic; callers treat failures as non-fatal.
type Formatter struct {
	log   ports.Logger
	cargo string
}

// NewFormatter creates a formatter invoking cargo from PATH.
func NewFormatter(log ports.Logger) *Formatter {
	return &Formatter{log: log, cargo: "cargo"}
}

// Format runs the formatter in place on the file at path.
func (f *Formatter) Format(ctx context.Context, path string) error {
	f.log.Info(fmt.Sprintf("formatting %s", path))
	cmd := exec.CommandContext(ctx, f.cargo, "fmt", "--", path) //nolint:gosec // path is constructed by the writer
	if output, err := cmd.CombinedOutput(); err != nil {
		return zerr.With(zerr.Wrap(err, "cargo fmt failed"), "output", string(output))
	}
	return nil
}

// Ensure Formatter satisfies the interface.
var _ ports.Formatter = (*Formatter)(nil)
