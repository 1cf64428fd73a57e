package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadDownloadDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	content := []byte("%PDF-1.4 hello")
	path, err := s.Upload(ctx, bytes.NewReader(content), "leave/u1/doc.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "leave/u1/doc.pdf", path)

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, s.Delete(ctx, path))

	exists, err = s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error
	assert.NoError(t, s.Delete(ctx, path))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = s.Upload(ctx, bytes.NewReader([]byte("x")), "../../etc/passwd", "application/pdf")
	assert.Error(t, err)
}

func TestLocalStorage_GetURL(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	url, err := s.GetURL(ctx, "leave/u1/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/leave/u1/doc.pdf", url)
}
