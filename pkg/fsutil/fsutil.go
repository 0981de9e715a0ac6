// Package fsutil provides the file system primitives used to read analysis
// records and persist exported report artifacts.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath is the conventional path argument meaning "read standard input".
const StdinPath = "-"

// MaxInputSize caps how much of a record file is read (32 MiB).
const MaxInputSize = 32 << 20

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge indicates the input exceeds MaxInputSize.
	ErrTooLarge = errors.New("input too large")
)

// ReadInput reads path, or stdin when path is StdinPath.
func ReadInput(ctx context.Context, path string, stdin io.Reader) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read input: %w", ctx.Err())
	default:
	}

	if path == StdinPath {
		return readLimited(stdin, "stdin")
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if stat.Size() > MaxInputSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, stat.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer f.Close()

	return readLimited(f, path)
}

func readLimited(r io.Reader, name string) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(content) > MaxInputSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, name)
	}
	return content, nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

// SanitizeFilename makes name safe to use as a single path element.
// Path separators and NUL bytes become underscores; "." and ".." are
// rejected by returning "_".
func SanitizeFilename(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		default:
			return r
		}
	}, name)
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "_"
	}
	return cleaned
}
