package ports

import "context"

// ProgramBuilder defines the interface to the external build collaborator.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ProgramBuilder interface {
	// Build compiles the program whose manifest lives at manifestPath and
	// deposits the artifact in outDir. A non-zero exit status is an error
	// carrying the status code.
	Build(ctx context.Context, manifestPath, outDir string) error
}
