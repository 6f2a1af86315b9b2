package fsx

import (
	"context"
	"errors"
	"io"
)

// ErrNotExist is returned when a path does not exist in the backing store
var ErrNotExist = errors.New("fsx: file does not exist")

// FileReader reads whole files by path
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileSystem is the storage abstraction used for uploaded documents
type FileSystem interface {
	FileReader

	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
	WriteFile(ctx context.Context, path string, data []byte) error
	WriteFileStream(ctx context.Context, path string, r io.Reader) error
	DeleteFile(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)

	// Join builds a backend-specific path from its elements
	Join(elem ...string) string
}
