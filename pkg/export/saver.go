package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yaklabco/codetestguard/pkg/fsutil"
)

// Saver is the host's "save to device" primitive. It receives a finished
// artifact and reports where it was stored.
type Saver interface {
	Save(ctx context.Context, name string, payload []byte) (string, error)
}

// Compile-time interface checks.
var (
	_ Saver = (*FileSaver)(nil)
	_ Saver = (*WriterSaver)(nil)
	_ Saver = SaverFunc(nil)
)

// SaverFunc adapts a function to Saver.
type SaverFunc func(ctx context.Context, name string, payload []byte) (string, error)

// Save implements Saver.
func (f SaverFunc) Save(ctx context.Context, name string, payload []byte) (string, error) {
	return f(ctx, name, payload)
}

// FileSaver writes artifacts into a directory using atomic writes.
type FileSaver struct {
	// Dir is the destination directory; empty means the working directory.
	Dir string

	// Mode is the file mode for new artifacts; 0 means fsutil.DefaultFileMode.
	Mode os.FileMode
}

// Save implements Saver. The name is reduced to a single path element so a
// project name containing separators cannot escape Dir.
func (s *FileSaver) Save(ctx context.Context, name string, payload []byte) (string, error) {
	path := filepath.Join(s.Dir, fsutil.SanitizeFilename(name))
	if err := fsutil.WriteAtomic(ctx, path, payload, s.Mode); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return path, nil
}

// WriterSaver streams artifacts to a writer, typically stdout. The name is
// not written.
type WriterSaver struct {
	W io.Writer
}

// Save implements Saver.
func (s *WriterSaver) Save(_ context.Context, name string, payload []byte) (string, error) {
	if _, err := s.W.Write(payload); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return "-", nil
}
