package mock

import (
	"context"

	"github.com/seba2390/bevydoc"
)

var _ bevydoc.LookupService = (*LookupService)(nil)

// LookupService is a mock implementation of bevydoc.LookupService.
type LookupService struct {
	CreateLookupFn        func(ctx context.Context, lookup *bevydoc.Lookup) error
	FindLookupByIDFn      func(ctx context.Context, id string) (*bevydoc.Lookup, error)
	FindLookupByKeywordFn func(ctx context.Context, keyword string) (*bevydoc.Lookup, error)
	FindLookupsFn         func(ctx context.Context, filter bevydoc.LookupFilter) ([]*bevydoc.Lookup, error)
	DeleteLookupFn        func(ctx context.Context, id string) error
}

func (s *LookupService) CreateLookup(ctx context.Context, lookup *bevydoc.Lookup) error {
	return s.CreateLookupFn(ctx, lookup)
}

func (s *LookupService) FindLookupByID(ctx context.Context, id string) (*bevydoc.Lookup, error) {
	return s.FindLookupByIDFn(ctx, id)
}

func (s *LookupService) FindLookupByKeyword(ctx context.Context, keyword string) (*bevydoc.Lookup, error) {
	return s.FindLookupByKeywordFn(ctx, keyword)
}

func (s *LookupService) FindLookups(ctx context.Context, filter bevydoc.LookupFilter) ([]*bevydoc.Lookup, error) {
	return s.FindLookupsFn(ctx, filter)
}

func (s *LookupService) DeleteLookup(ctx context.Context, id string) error {
	return s.DeleteLookupFn(ctx, id)
}
