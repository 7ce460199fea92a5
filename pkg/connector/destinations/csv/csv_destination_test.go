package csv

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/nova/pkg/config"
)

func newTestDestination(t *testing.T, cfg *config.BaseConfig) *Destination {
	t.Helper()
	dest, err := NewDestination(cfg)
	require.NoError(t, err)
	require.NoError(t, dest.Initialize(context.Background(), cfg))
	return dest.(*Destination)
}

func testConfig(t *testing.T) *config.BaseConfig {
	cfg := config.NewBaseConfig("test", "conversion")
	cfg.Source.Path = "in.json"
	cfg.Output.Path = filepath.Join(t.TempDir(), "out.csv")
	return cfg
}

func TestWriteCSV(t *testing.T) {
	cfg := testConfig(t)
	dest := newTestDestination(t, cfg)

	header := []string{"a", "b"}
	rows := [][]string{{"1", ""}, {"", "2"}}

	require.NoError(t, dest.Write(context.Background(), header, rows))
	require.NoError(t, dest.Close(context.Background()))

	content, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\n,2\n", string(content))
}

func TestWriteQuotesSpecialCharacters(t *testing.T) {
	cfg := testConfig(t)
	dest := newTestDestination(t, cfg)

	header := []string{"text"}
	rows := [][]string{
		{"has, comma"},
		{`has "quote"`},
		{"has\nnewline"},
	}

	require.NoError(t, dest.Write(context.Background(), header, rows))
	require.NoError(t, dest.Close(context.Background()))

	content, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)

	lines := string(content)
	assert.Contains(t, lines, `"has, comma"`)
	assert.Contains(t, lines, `"has ""quote"""`)
	assert.Contains(t, lines, "\"has\nnewline\"")
}

func TestWriteCustomDelimiter(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Delimiter = ";"
	dest := newTestDestination(t, cfg)

	require.NoError(t, dest.Write(context.Background(), []string{"a", "b"}, [][]string{{"1", "2"}}))
	require.NoError(t, dest.Close(context.Background()))

	content, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Equal(t, "a;b\n1;2\n", string(content))
}

func TestWriteGzipCompressed(t *testing.T) {
	cfg := testConfig(t)
	cfg.Advanced.EnableCompression = true
	cfg.Advanced.CompressionAlgorithm = "gzip"
	dest := newTestDestination(t, cfg)

	assert.Equal(t, cfg.Output.Path+".gz", dest.Path())

	require.NoError(t, dest.Write(context.Background(), []string{"a"}, [][]string{{"1"}}))
	require.NoError(t, dest.Close(context.Background()))

	compressed, err := os.ReadFile(dest.Path())
	require.NoError(t, err)

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	defer zr.Close()

	content, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "a\n1\n", string(content))
}

func TestWriteZstdCompressed(t *testing.T) {
	cfg := testConfig(t)
	cfg.Advanced.EnableCompression = true
	cfg.Advanced.CompressionAlgorithm = "zstd"
	dest := newTestDestination(t, cfg)

	assert.True(t, strings.HasSuffix(dest.Path(), ".zst"))

	require.NoError(t, dest.Write(context.Background(), []string{"a"}, [][]string{{"1"}}))
	require.NoError(t, dest.Close(context.Background()))

	compressed, err := os.ReadFile(dest.Path())
	require.NoError(t, err)

	zr, err := zstd.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	defer zr.Close()

	content, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "a\n1\n", string(content))
}

func TestInitializeRejectsUnknownAlgorithm(t *testing.T) {
	cfg := testConfig(t)
	cfg.Advanced.EnableCompression = true
	cfg.Advanced.CompressionAlgorithm = "brotli"

	dest, err := NewDestination(cfg)
	require.NoError(t, err)

	assert.Error(t, dest.Initialize(context.Background(), cfg))
}

func TestWriteWithoutInitialize(t *testing.T) {
	dest := &Destination{}

	assert.Error(t, dest.Write(context.Background(), []string{"a"}, nil))
}
