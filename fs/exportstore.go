package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/seba2390/bevydoc"
)

// ExportStore writes an export with atomic replace semantics.
// Lookups are saved to a temporary directory, then moved into place on
// Commit so a partial export never clobbers a previous one.
type ExportStore struct {
	baseDir string
	name    string
	writer  bevydoc.LookupWriter
}

// NewExportStore creates a new ExportStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExportStore(baseDir, name string) *ExportStore {
	s := &ExportStore{
		baseDir: baseDir,
		name:    name,
	}
	s.writer = NewWriter(s.tempDir())
	return s
}

func (s *ExportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ExportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes a lookup into the temporary export directory.
func (s *ExportStore) Save(ctx context.Context, l *bevydoc.Lookup) error {
	return s.writer.CreateLookup(ctx, l)
}

// Commit replaces the final directory with the temporary one.
func (s *ExportStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory.
func (s *ExportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// Dir returns the final export directory path.
func (s *ExportStore) Dir() string {
	return s.finalDir()
}
