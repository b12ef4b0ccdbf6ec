package bevydoc

import "context"

// Asker provides natural language question answering over cached lookups.
type Asker interface {
	// Ask answers a question using the locally cached documentation.
	// Returns ENOTFOUND if the cache is empty.
	Ask(ctx context.Context, question string) (string, error)
}
