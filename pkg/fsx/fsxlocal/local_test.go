package fsxlocal

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Abraxas-365/hirematch/pkg/fsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileSystemRoundTrip(t *testing.T) {
	ctx := context.Background()
	lfs, err := NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)

	path := lfs.Join("resumes", "u1", "2026", "10", "cv.pdf")
	require.NoError(t, lfs.WriteFileStream(ctx, path, strings.NewReader("hello")))

	ok, err := lfs.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := lfs.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	rc, err := lfs.ReadFileStream(ctx, path)
	require.NoError(t, err)
	streamed, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(streamed))

	require.NoError(t, lfs.DeleteFile(ctx, path))
	ok, err = lfs.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalFileSystemMissingFile(t *testing.T) {
	lfs, err := NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)

	_, err = lfs.ReadFile(context.Background(), "nope.pdf")
	assert.ErrorIs(t, err, fsx.ErrNotExist)
}

func TestLocalFileSystemRejectsEscape(t *testing.T) {
	lfs, err := NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)

	err = lfs.WriteFile(context.Background(), "../outside.txt", []byte("x"))
	assert.Error(t, err)
}
