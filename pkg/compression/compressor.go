// Package compression provides compressed output writers for Nova file
// destinations. Algorithms cover the usual ratio/speed trade-offs: gzip for
// compatibility, zstd for balanced ratio and speed, snappy and lz4 for
// speed-first pipelines.
package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm represents a compression algorithm.
type Algorithm string

const (
	// Gzip is the most widely compatible algorithm.
	Gzip Algorithm = "gzip"
	// Zstd balances compression ratio and speed.
	Zstd Algorithm = "zstd"
	// Snappy favors speed over ratio.
	Snappy Algorithm = "snappy"
	// LZ4 favors speed over ratio.
	LZ4 Algorithm = "lz4"
)

// Level controls the compression ratio vs speed trade-off for algorithms
// that support it (gzip, zstd). Snappy and lz4 run at their defaults.
type Level int

const (
	// Fastest minimizes CPU cost.
	Fastest Level = 1
	// Default balances ratio and speed.
	Default Level = 6
	// Best maximizes compression ratio.
	Best Level = 9
)

// ParseAlgorithm parses an algorithm name from configuration.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case Gzip, Zstd, Snappy, LZ4:
		return Algorithm(name), nil
	default:
		return "", fmt.Errorf("unknown compression algorithm: %s", name)
	}
}

// Extension returns the conventional file extension for the algorithm.
func Extension(algorithm Algorithm) string {
	switch algorithm {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case Snappy:
		return ".snappy"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// NewWriter wraps w with a compressing writer for the given algorithm.
// The returned writer must be closed to flush trailing blocks; closing it
// does not close w.
func NewWriter(w io.Writer, algorithm Algorithm, level Level) (io.WriteCloser, error) {
	switch algorithm {
	case Gzip:
		gw, err := gzip.NewWriterLevel(w, int(level))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip writer: %w", err)
		}
		return gw, nil
	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(int(level))))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zw, nil
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown compression algorithm: %s", algorithm)
	}
}
