package ltxtoc

import "context"

// DocumentStore reads and writes HTML documents.
type DocumentStore interface {
	// ReadDocument returns the text of the document at path. Bytes that are
	// not valid UTF-8 are replaced rather than rejected.
	// Returns ENOTFOUND if the document does not exist.
	ReadDocument(ctx context.Context, path string) (string, error)

	// WriteDocument replaces the document at path with content.
	WriteDocument(ctx context.Context, path, content string) error
}
