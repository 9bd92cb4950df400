// Package fs provides file-based storage for HTML documents.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ltxtoc"
	"golang.org/x/text/encoding/unicode"
)

// Ensure Store implements ltxtoc.DocumentStore at compile time.
var _ ltxtoc.DocumentStore = (*Store)(nil)

// Store reads and writes documents on the local filesystem.
// Writes are atomic: content goes to a temporary file in the target
// directory which is then renamed over the destination.
type Store struct {
	perm os.FileMode
}

// NewStore creates a new Store writing files with mode 0644.
func NewStore() *Store {
	return &Store{perm: 0644}
}

// ReadDocument reads the file at path. Invalid UTF-8 sequences are
// replaced with U+FFFD.
func (s *Store) ReadDocument(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", ltxtoc.Errorf(ltxtoc.EINVALID, "input path required")
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ltxtoc.Errorf(ltxtoc.ENOTFOUND, "input %q not found", path)
	} else if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return DecodeUTF8(b)
}

// DecodeUTF8 converts b to a string, replacing ill-formed UTF-8.
// A byte order mark is kept as is.
func DecodeUTF8(b []byte) (string, error) {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode utf-8: %w", err)
	}
	return string(out), nil
}

// WriteDocument replaces the file at path with content. The file is left
// untouched when it already holds exactly content, so its modification
// time only moves when the output changes.
func (s *Store) WriteDocument(ctx context.Context, path, content string) error {
	if path == "" {
		return ltxtoc.Errorf(ltxtoc.EINVALID, "output path required")
	}

	if Unchanged(path, content) {
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), s.perm); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Unchanged reports whether the file at path has exactly content.
// Missing or unreadable files count as changed.
func Unchanged(path, content string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() || info.Size() != int64(len(content)) {
		return false
	}

	d := xxhash.New()
	if _, err := io.Copy(d, f); err != nil {
		return false
	}
	return d.Sum64() == xxhash.Sum64String(content)
}
