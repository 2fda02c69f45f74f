package export

import (
	"fmt"
	"io"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
)

// BundleWriter concatenates documents into a single gzip-compressed stream,
// each prefixed by a filename banner. Used for bulk receipt exports.
type BundleWriter struct {
	gz *pgzip.Writer
	n  int
}

// NewBundleWriter wraps w with a parallel gzip compressor.
func NewBundleWriter(w io.Writer) *BundleWriter {
	return &BundleWriter{gz: pgzip.NewWriter(w)}
}

// Add appends one document to the bundle.
func (b *BundleWriter) Add(doc Document) error {
	if b.n > 0 {
		if _, err := io.WriteString(b.gz, "\n"); err != nil {
			return errors.Wrap(err, "write separator")
		}
	}
	if _, err := fmt.Fprintf(b.gz, "=== %s ===\n", doc.Filename); err != nil {
		return errors.Wrapf(err, "write banner for %q", doc.Filename)
	}
	if _, err := b.gz.Write(doc.Data); err != nil {
		return errors.Wrapf(err, "write %q", doc.Filename)
	}
	b.n++
	return nil
}

// Len returns the number of documents added so far.
func (b *BundleWriter) Len() int {
	return b.n
}

// Close flushes and closes the compressor. It does not close the underlying
// writer.
func (b *BundleWriter) Close() error {
	return b.gz.Close()
}
