package export

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	pgzip "github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSaver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	saver := NewDirSaver(dir)

	doc := Document{
		Filename:    "receipt-ORD001.txt",
		ContentType: TextPlain,
		Data:        []byte("MOS Burger Receipt\n"),
	}
	require.NoError(t, saver.Save(context.Background(), doc))

	data, err := os.ReadFile(filepath.Join(dir, "receipt-ORD001.txt"))
	require.NoError(t, err)
	assert.Equal(t, doc.Data, data)
	assert.Equal(t, filepath.Join(dir, "receipt-ORD001.txt"), saver.Path(doc))
}

func TestDirSaver_Overwrites(t *testing.T) {
	dir := t.TempDir()
	saver := NewDirSaver(dir)
	ctx := context.Background()

	doc := Document{Filename: "monthly-report-2024-01.txt", Data: []byte("first")}
	require.NoError(t, saver.Save(ctx, doc))

	doc.Data = []byte("second")
	require.NoError(t, saver.Save(ctx, doc))

	data, err := os.ReadFile(filepath.Join(dir, doc.Filename))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestBundleWriter(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBundleWriter(&buf)

	require.NoError(t, bw.Add(Document{Filename: "receipt-ORD001.txt", Data: []byte("order one\n")}))
	require.NoError(t, bw.Add(Document{Filename: "receipt-ORD002.txt", Data: []byte("order two\n")}))
	assert.Equal(t, 2, bw.Len())
	require.NoError(t, bw.Close())

	gz, err := pgzip.NewReader(&buf)
	require.NoError(t, err)
	raw, err := io.ReadAll(gz)
	require.NoError(t, err)

	want := "=== receipt-ORD001.txt ===\n" +
		"order one\n" +
		"\n" +
		"=== receipt-ORD002.txt ===\n" +
		"order two\n"
	assert.Equal(t, want, string(raw))
}

func TestBundleWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBundleWriter(&buf)
	assert.Equal(t, 0, bw.Len())
	require.NoError(t, bw.Close())

	gz, err := pgzip.NewReader(&buf)
	require.NoError(t, err)
	raw, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Empty(t, raw)
}
