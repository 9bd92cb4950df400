package mock

import (
	"context"

	"github.com/fwojciec/ltxtoc"
)

var _ ltxtoc.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of ltxtoc.DocumentStore.
type DocumentStore struct {
	ReadDocumentFn  func(ctx context.Context, path string) (string, error)
	WriteDocumentFn func(ctx context.Context, path, content string) error
}

func (s *DocumentStore) ReadDocument(ctx context.Context, path string) (string, error) {
	return s.ReadDocumentFn(ctx, path)
}

func (s *DocumentStore) WriteDocument(ctx context.Context, path, content string) error {
	return s.WriteDocumentFn(ctx, path, content)
}
