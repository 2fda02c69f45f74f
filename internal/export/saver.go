// Package export defines the file-saving collaborator: formatted documents
// are handed off here as named binary blobs, keeping the formatter free of
// any I/O.
package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
)

// TextPlain is the media type for generated receipts and reports.
const TextPlain = "text/plain; charset=utf-8"

// Document is a formatted report or receipt ready to be saved.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Saver persists a document. Implementations decide where the bytes go; the
// caller consumes no return value beyond the error.
type Saver interface {
	Save(ctx context.Context, doc Document) error
}

// DirSaver writes documents into a directory, creating it on first use.
type DirSaver struct {
	dir string
}

// NewDirSaver returns a DirSaver rooted at dir.
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{dir: dir}
}

// Save writes the document under its suggested filename.
func (s *DirSaver) Save(_ context.Context, doc Document) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output dir %q", s.dir)
	}
	path := filepath.Join(s.dir, doc.Filename)
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return errors.Wrapf(err, "write %q", path)
	}
	return nil
}

// Path returns where Save would place the given document.
func (s *DirSaver) Path(doc Document) string {
	return filepath.Join(s.dir, doc.Filename)
}
