// Package export persists zone-file blobs to disk. The write is guarded by a
// file lock so concurrent cfman invocations cannot interleave on the same
// target file.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/lite-lake/cfman/internal/domain"
)

type Writer struct {
	path  string
	flock *flock.Flock
}

func NewWriter(path string) *Writer {
	return &Writer{
		path:  path,
		flock: flock.New(path + ".lock"),
	}
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Write(data []byte) error {
	if err := w.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer w.flock.Unlock()

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.WrapOp("creating "+dir, domain.ErrExportWriteFailed)
		}
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return domain.WrapOp("writing "+w.path, domain.ErrExportWriteFailed)
	}
	return nil
}

// DefaultPath derives an output file name from the zone name, replacing path
// separators so the name cannot escape the working directory.
func DefaultPath(zoneName string) string {
	safe := strings.ReplaceAll(zoneName, "/", "_")
	return safe + ".zone"
}
