package mock

import (
	"context"

	"github.com/seba2390/bevydoc"
)

var _ bevydoc.Asker = (*Asker)(nil)

// Asker is a mock implementation of bevydoc.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}
