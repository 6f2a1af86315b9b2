package fsxlocal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Abraxas-365/hirematch/pkg/fsx"
)

// LocalFileSystem stores files under a root directory on disk
type LocalFileSystem struct {
	root string
}

var _ fsx.FileSystem = (*LocalFileSystem)(nil)

func NewLocalFileSystem(root string) (*LocalFileSystem, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create root %q: %w", abs, err)
	}
	return &LocalFileSystem{root: abs}, nil
}

func (l *LocalFileSystem) Join(elem ...string) string {
	return filepath.ToSlash(filepath.Join(elem...))
}

func (l *LocalFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	full, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, wrapNotExist(path, err)
	}
	return data, nil
}

func (l *LocalFileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	full, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, wrapNotExist(path, err)
	}
	return f, nil
}

func (l *LocalFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	full, err := l.prepare(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (l *LocalFileSystem) WriteFileStream(ctx context.Context, path string, r io.Reader) error {
	full, err := l.prepare(path)
	if err != nil {
		return err
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func (l *LocalFileSystem) DeleteFile(ctx context.Context, path string) error {
	full, err := l.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		return wrapNotExist(path, err)
	}
	return nil
}

func (l *LocalFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	full, err := l.resolve(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(full)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// resolve maps a storage path to a location inside root, rejecting escapes
func (l *LocalFileSystem) resolve(path string) (string, error) {
	full := filepath.Join(l.root, filepath.FromSlash(path))
	if full != l.root && !strings.HasPrefix(full, l.root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes storage root", path)
	}
	return full, nil
}

func (l *LocalFileSystem) prepare(path string) (string, error) {
	full, err := l.resolve(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create parent of %s: %w", path, err)
	}
	return full, nil
}

func wrapNotExist(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, fsx.ErrNotExist)
	}
	return fmt.Errorf("%s: %w", path, err)
}
