package ports

import "context"

// SourceWriter defines the interface for placing generated source on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type SourceWriter interface {
	// Write atomically replaces the file at rel (relative to root) with
	// content. Concurrent readers of the final path never observe a partial
	// write; on error the previous file is left untouched.
	Write(ctx context.Context, root, rel string, content []byte) error
}
