package utils

import (
	"io"
	"os"
)

// FileExists reports whether path can be opened for reading.
func FileExists(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = file.Close()
	return true
}

// ReadFile returns the whole content of path, or "" if it cannot be read.
// A missing file and an empty file are indistinguishable to the caller;
// the underlying error is logged at debug level.
func ReadFile(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log().Debug("open file for read", "path", path, "error", err)
		return ""
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log().Debug("read file", "path", path, "error", err)
	}
	return string(content)
}

// WriteFile creates or truncates path and writes content. It reports
// whether the write and the close both succeeded.
func WriteFile(path, content string) bool {
	file, err := os.Create(path)
	if err != nil {
		log().Debug("open file for write", "path", path, "error", err)
		return false
	}

	if _, err = io.WriteString(file, content); err != nil {
		log().Debug("write file", "path", path, "error", err)
		_ = file.Close()
		return false
	}
	if err = file.Close(); err != nil {
		log().Debug("close file", "path", path, "error", err)
		return false
	}
	return true
}
