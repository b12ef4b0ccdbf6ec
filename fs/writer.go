// Package fs provides file-based export of cached lookups.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/seba2390/bevydoc"
)

// PathFromLookup converts a lookup's item path to a relative file path.
// Example: bevy::transform::components::Transform → bevy/transform/components/Transform.md
func PathFromLookup(l *bevydoc.Lookup) string {
	if l.ItemPath == "" {
		return sanitize(l.Keyword) + ".md"
	}

	segments := strings.Split(l.ItemPath, "::")
	for i, s := range segments {
		segments[i] = sanitize(s)
	}
	return filepath.Join(segments...) + ".md"
}

// sanitize strips characters that are unsafe in file names.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, s)
}

// FormatLookup formats a lookup as markdown with YAML frontmatter.
func FormatLookup(l *bevydoc.Lookup) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(l.URL)
	b.WriteString("\npath: ")
	b.WriteString(l.ItemPath)
	b.WriteString("\nkind: ")
	b.WriteString(string(l.Kind))
	b.WriteString("\nfetched: ")
	b.WriteString(l.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString("```rust\n")
	b.WriteString(strings.TrimRight(l.Definition, "\n"))
	b.WriteString("\n```\n")
	if l.Example != "" {
		b.WriteString("\n## Example\n\n```rust\n")
		b.WriteString(strings.TrimRight(l.Example, "\n"))
		b.WriteString("\n```\n")
	}
	if l.Doc != "" {
		b.WriteString("\n")
		b.WriteString(l.Doc)
		if !strings.HasSuffix(l.Doc, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Ensure Writer implements bevydoc.LookupWriter at compile time.
var _ bevydoc.LookupWriter = (*Writer)(nil)

// Writer writes lookups as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateLookup writes a lookup to disk as a markdown file.
func (w *Writer) CreateLookup(ctx context.Context, l *bevydoc.Lookup) error {
	if err := l.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, PathFromLookup(l))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatLookup(l)), 0644)
}
