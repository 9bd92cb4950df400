// Package slog provides logging decorators for ltxtoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ltxtoc"
)

// Ensure LoggingStore implements ltxtoc.DocumentStore.
var _ ltxtoc.DocumentStore = (*LoggingStore)(nil)

// LoggingStore wraps a DocumentStore with debug logging.
type LoggingStore struct {
	next   ltxtoc.DocumentStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next ltxtoc.DocumentStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped store and logs the operation.
func (s *LoggingStore) ReadDocument(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadDocument(ctx, path)
}

// WriteDocument delegates to the wrapped store and logs the operation.
func (s *LoggingStore) WriteDocument(ctx context.Context, path, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteDocument(ctx, path, content)
}
