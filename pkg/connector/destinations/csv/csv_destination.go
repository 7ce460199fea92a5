// Package csv provides the CSV file destination connector.
package csv

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/ajitpratap0/nova/pkg/compression"
	"github.com/ajitpratap0/nova/pkg/config"
	"github.com/ajitpratap0/nova/pkg/connector/core"
	"github.com/ajitpratap0/nova/pkg/errors"
)

// Destination writes reconciled rows to a CSV file. Field quoting follows
// RFC 4180: fields containing the delimiter, a quote or a newline are
// quoted by the underlying writer.
//
// When compression is enabled the file is wrapped with the configured
// algorithm and the conventional extension (.gz, .zst, ...) is appended to
// the output path.
type Destination struct {
	config     *config.BaseConfig
	file       *os.File
	compressed io.WriteCloser
	writer     *csv.Writer
	path       string
}

// NewDestination creates a CSV destination from configuration.
func NewDestination(cfg *config.BaseConfig) (core.Destination, error) {
	return &Destination{config: cfg}, nil
}

// Initialize creates the output file and the CSV writer.
func (d *Destination) Initialize(ctx context.Context, cfg *config.BaseConfig) error {
	d.config = cfg
	d.path = cfg.Output.Path

	var algorithm compression.Algorithm
	if cfg.Advanced.EnableCompression {
		parsed, err := compression.ParseAlgorithm(cfg.Advanced.CompressionAlgorithm)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "invalid compression configuration")
		}
		algorithm = parsed
		d.path += compression.Extension(algorithm)
	}

	file, err := os.Create(d.path)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to create output file").WithDetail("path", d.path)
	}
	d.file = file

	var sink io.Writer = file
	if cfg.Advanced.EnableCompression {
		compressed, err := compression.NewWriter(file, algorithm, compression.Level(cfg.Advanced.CompressionLevel))
		if err != nil {
			_ = file.Close()
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to create compressed writer")
		}
		d.compressed = compressed
		sink = compressed
	}

	d.writer = csv.NewWriter(sink)
	d.writer.Comma = cfg.Output.DelimiterRune()

	return nil
}

// Write persists the header line followed by one line per row.
func (d *Destination) Write(ctx context.Context, header []string, rows [][]string) error {
	if d.writer == nil {
		return errors.New(errors.ErrorTypeFile, "destination not initialized")
	}

	if err := d.writer.Write(header); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write header")
	}

	for i, row := range rows {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := d.writer.Write(row); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to write row").WithDetail("row", i)
		}
	}

	d.writer.Flush()
	if err := d.writer.Error(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to flush output")
	}

	return nil
}

// Health reports whether the output file is open.
func (d *Destination) Health(ctx context.Context) error {
	if d.file == nil {
		return errors.New(errors.ErrorTypeFile, "output file not open")
	}
	return nil
}

// Close flushes buffers and closes the output file.
func (d *Destination) Close(ctx context.Context) error {
	if d.writer != nil {
		d.writer.Flush()
		if err := d.writer.Error(); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to flush output")
		}
	}
	if d.compressed != nil {
		if err := d.compressed.Close(); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to close compressed writer")
		}
		d.compressed = nil
	}
	if d.file != nil {
		if err := d.file.Close(); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to close output file")
		}
		d.file = nil
	}
	return nil
}

// Path returns the resolved output path, including any compression extension.
func (d *Destination) Path() string {
	return d.path
}
