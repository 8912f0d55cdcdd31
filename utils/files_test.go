package utils

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.txt")
	contents := []string{
		"hello\nworld\n",
		"",
		"tabs\tand unicode: héllo\r\n",
	}

	for _, content := range contents {
		assert.True(t, WriteFile(path, content))
		assert.True(t, FileExists(path))
		assert.Equal(t, content, ReadFile(path))
	}
}

func TestWriteFile_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.txt")

	assert.True(t, WriteFile(path, "a much longer first version"))
	assert.True(t, WriteFile(path, "short"))
	assert.Equal(t, "short", ReadFile(path))
}

func TestReadFile_Missing(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	path := filepath.Join(t.TempDir(), "missing.txt")

	assert.False(t, FileExists(path))
	assert.Equal(t, "", ReadFile(path))
	assert.Contains(t, buf.String(), "open file for read")
}

func TestWriteFile_Failure(t *testing.T) {
	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	defer SetLogger(nil)

	dir := t.TempDir()
	assert.False(t, WriteFile(filepath.Join(dir, "no", "such", "dir.txt"), "x"))
	assert.False(t, WriteFile(dir, "x"))
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exists.txt")
	assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, FileExists(path))
}
