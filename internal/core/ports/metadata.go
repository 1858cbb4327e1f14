package ports

import (
	"context"

	"go.trai.ch/elfgen/internal/core/domain"
)

// MetadataReader defines the interface to the external metadata collaborator.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataReader interface {
	// Read queries the package/target catalog of the workspace identified by
	// manifestPath, non-recursive into dependencies. An empty manifestPath
	// queries the workspace containing the current directory.
	//
	// Invocation failure or malformed output is an error; there are no
	// partial catalogs.
	Read(ctx context.Context, manifestPath string) (domain.Catalog, error)
}
