package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/seba2390/bevydoc"
)

// Ensure LoggingLookupService implements bevydoc.LookupService.
var _ bevydoc.LookupService = (*LoggingLookupService)(nil)

// LoggingLookupService wraps a LookupService with logging for cache writes
// and deletes. Reads are not logged; they are too frequent to be useful.
type LoggingLookupService struct {
	next   bevydoc.LookupService
	logger *slog.Logger
}

// NewLoggingLookupService creates a new LoggingLookupService.
func NewLoggingLookupService(next bevydoc.LookupService, logger *slog.Logger) *LoggingLookupService {
	return &LoggingLookupService{next: next, logger: logger}
}

// CreateLookup logs the stored keyword and delegates to the wrapped service.
func (s *LoggingLookupService) CreateLookup(ctx context.Context, lookup *bevydoc.Lookup) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("cache write",
				"keyword", lookup.Keyword,
				"err", err,
			)
			return
		}
		s.logger.Info("cache write",
			"keyword", lookup.Keyword,
			"path", lookup.ItemPath,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.CreateLookup(ctx, lookup)
}

// FindLookupByID delegates to the wrapped service.
func (s *LoggingLookupService) FindLookupByID(ctx context.Context, id string) (*bevydoc.Lookup, error) {
	return s.next.FindLookupByID(ctx, id)
}

// FindLookupByKeyword delegates to the wrapped service.
func (s *LoggingLookupService) FindLookupByKeyword(ctx context.Context, keyword string) (*bevydoc.Lookup, error) {
	return s.next.FindLookupByKeyword(ctx, keyword)
}

// FindLookups delegates to the wrapped service.
func (s *LoggingLookupService) FindLookups(ctx context.Context, filter bevydoc.LookupFilter) ([]*bevydoc.Lookup, error) {
	return s.next.FindLookups(ctx, filter)
}

// DeleteLookup logs the deletion and delegates to the wrapped service.
func (s *LoggingLookupService) DeleteLookup(ctx context.Context, id string) (err error) {
	defer func() {
		if err != nil {
			s.logger.Error("cache delete", "id", id, "err", err)
			return
		}
		s.logger.Info("cache delete", "id", id)
	}()
	return s.next.DeleteLookup(ctx, id)
}
