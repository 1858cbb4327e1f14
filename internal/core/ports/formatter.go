package ports

import "context"

// Formatter defines the interface to the external source-formatting
// collaborator. It is best-effort: callers log failures and move on.
//
//go:generate go run go.uber.org/mock/mockgen -source=formatter.go -destination=mocks/mock_formatter.go -package=mocks
type Formatter interface {
	// Format rewrites the file at path in canonical style, in place.
	Format(ctx context.Context, path string) error
}
