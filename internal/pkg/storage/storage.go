package storage

import (
	"context"
	"io"
)

// FileStorage is the file sink for generated artifacts such as CSV exports.
type FileStorage interface {
	// Save writes the file and returns the stored path/key.
	Save(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Open retrieves a previously stored file.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(ctx context.Context, path string) error

	// Exists reports whether a file is present at path.
	Exists(ctx context.Context, path string) (bool, error)
}
