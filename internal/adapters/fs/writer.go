// Package fs implements atomic placement of generated source files.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/elfgen/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Writer implements ports.SourceWriter. Content is staged in a temporary
// file in the target directory, formatted, and renamed over the final path,
// so readers of that path never observe a partial write. When the formatted
// content matches what is already on disk the rename is skipped, keeping the
// file's mtime stable for downstream build caching.
type Writer struct {
	formatter ports.Formatter
	log       ports.Logger
}

// NewWriter creates a writer that formats staged files with formatter.
func NewWriter(formatter ports.Formatter, log ports.Logger) *Writer {
	return &Writer{formatter: formatter, log: log}
}

// Write atomically replaces the file at rel (relative to root) with content.
func (w *Writer) Write(ctx context.Context, root, rel string, content []byte) error {
	target := filepath.Join(root, rel)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrGeneratedWrite, err), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, ".elfgen-*.rs")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrGeneratedWrite, err), "dir", dir)
	}
	tmpPath := tmp.Name()
	defer func() {
		// Best effort; the temp file is gone after a successful rename.
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return zerr.With(errors.Join(domain.ErrGeneratedWrite, err), "path", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(errors.Join(domain.ErrGeneratedWrite, err), "path", tmpPath)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrGeneratedWrite, err), "path", tmpPath)
	}

	if err := w.formatter.Format(ctx, tmpPath); err != nil {
		w.log.Warn(fmt.Sprintf("formatting failed, writing unformatted source: %v", err))
	}

	same, err := filesIdentical(tmpPath, target)
	if err != nil {
		return err
	}
	if same {
		w.log.Info(fmt.Sprintf("%s is up to date", target))
		return nil
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return zerr.With(errors.Join(domain.ErrGeneratedWrite, err), "path", target)
	}
	w.log.Info(fmt.Sprintf("wrote %s", target))
	return nil
}

// filesIdentical reports whether both files exist and hash to the same
// content. A missing target is simply not identical.
func filesIdentical(a, b string) (bool, error) {
	hashA, err := hashFile(a)
	if err != nil {
		return false, err
	}
	hashB, err := hashFile(b)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return hashA == hashB, nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is constructed by the writer
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, err
		}
		return 0, zerr.With(errors.Join(domain.ErrGeneratedWrite, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(errors.Join(domain.ErrGeneratedWrite, err), "path", path)
	}
	return hasher.Sum64(), nil
}

// Ensure Writer satisfies the interface.
var _ ports.SourceWriter = (*Writer)(nil)
