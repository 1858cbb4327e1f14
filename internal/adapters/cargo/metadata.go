// Package cargo shells out to the cargo toolchain for workspace metadata,
// program builds, and source formatting.
package cargo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"slices"

	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/elfgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// artifactCrateType is the crate type that marks a target as a loadable
// program artifact.
const artifactCrateType = "cdylib"

// Reader implements ports.MetadataReader using `cargo metadata`.
type Reader struct {
	log   ports.Logger
	cargo string
}

// NewReader creates a metadata reader invoking cargo from PATH.
func NewReader(log ports.Logger) *Reader {
	return &Reader{log: log, cargo: "cargo"}
}

// Read queries the package/target catalog of the workspace identified by
// manifestPath. An empty manifestPath queries the workspace containing the
// current directory.
func (r *Reader) Read(ctx context.Context, manifestPath string) (domain.Catalog, error) {
	args := []string{"metadata", "--format-version", "1", "--no-deps"}
	if manifestPath != "" {
		args = append(args, "--manifest-path", manifestPath)
	}
	described := manifestPath
	if described == "" {
		described = "current directory"
	}
	r.log.Info(fmt.Sprintf("reading workspace metadata for %s", described))

	cmd := exec.CommandContext(ctx, r.cargo, args...) //nolint:gosec // manifest path is provided by user
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = string(exitErr.Stderr)
		}
		return domain.Catalog{}, zerr.With(zerr.With(
			errors.Join(domain.ErrWorkspaceMetadata, err),
			"stderr", stderr),
			"manifest_path", manifestPath,
		)
	}

	catalog, err := parseCatalog(output)
	if err != nil {
		return domain.Catalog{}, zerr.With(
			errors.Join(domain.ErrWorkspaceMetadata, err),
			"manifest_path", manifestPath,
		)
	}
	return catalog, nil
}

// parseCatalog flattens the metadata JSON into one entry per target.
func parseCatalog(data []byte) (domain.Catalog, error) {
	var meta metadataOutput
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.Catalog{}, zerr.Wrap(err, "failed to parse cargo metadata output")
	}

	catalog := domain.Catalog{WorkspaceRoot: meta.WorkspaceRoot}
	for _, pkg := range meta.Packages {
		for _, target := range pkg.Targets {
			catalog.Entries = append(catalog.Entries, domain.CatalogEntry{
				PackageName:  pkg.Name,
				TargetName:   target.Name,
				ManifestPath: pkg.ManifestPath,
				IsArtifact:   slices.Contains(target.CrateTypes, artifactCrateType),
			})
		}
	}
	return catalog, nil
}

// Ensure Reader satisfies the interface.
var _ ports.MetadataReader = (*Reader)(nil)
