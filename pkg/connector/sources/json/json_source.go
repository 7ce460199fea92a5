// Package json provides the JSON file source connector.
package json

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/ajitpratap0/nova/pkg/config"
	"github.com/ajitpratap0/nova/pkg/connector/core"
	"github.com/ajitpratap0/nova/pkg/errors"
	jsonpool "github.com/ajitpratap0/nova/pkg/json"
)

// Source reads a value tree from a JSON file.
//
// Two layouts are supported. "document" decodes the whole file as a single
// JSON value (an object or an array of records). "lines" reads
// line-delimited JSON (JSONL/NDJSON) and presents the records as one array,
// so downstream handling is identical for both layouts.
type Source struct {
	config     *config.BaseConfig
	file       *os.File
	filePath   string
	format     string
	bufferSize int
	bytesRead  int64
}

// NewSource creates a JSON source from configuration.
func NewSource(cfg *config.BaseConfig) (core.Source, error) {
	return &Source{config: cfg}, nil
}

// Initialize opens the input file.
func (s *Source) Initialize(ctx context.Context, cfg *config.BaseConfig) error {
	s.config = cfg
	s.filePath = cfg.Source.Path
	s.format = cfg.Source.Format
	if s.format == "" {
		s.format = config.FormatDocument
	}

	s.bufferSize = cfg.Performance.BufferSize
	if s.bufferSize <= 0 {
		s.bufferSize = 64 * 1024
	}

	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(err, errors.ErrorTypeNotFound, "input file not found").WithDetail("path", s.filePath)
		}
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to open input file").WithDetail("path", s.filePath)
	}
	s.file = file

	return nil
}

// Load decodes the input into a value tree.
func (s *Source) Load(ctx context.Context) (interface{}, error) {
	if s.file == nil {
		return nil, errors.New(errors.ErrorTypeFile, "source not initialized")
	}

	reader := bufio.NewReaderSize(s.file, s.bufferSize)

	if s.format == config.FormatLines {
		return s.loadLines(ctx, reader)
	}
	return s.loadDocument(reader)
}

// loadDocument decodes the whole file as one JSON value.
func (s *Source) loadDocument(reader io.Reader) (interface{}, error) {
	decoder := jsonpool.GetDecoder(reader)
	defer jsonpool.PutDecoder(decoder)

	var tree interface{}
	if err := decoder.Decode(&tree); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to decode JSON document").WithDetail("path", s.filePath)
	}

	return tree, nil
}

// loadLines reads line-delimited JSON, one record per line. Empty lines
// are skipped.
func (s *Source) loadLines(ctx context.Context, reader io.Reader) (interface{}, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, s.bufferSize), s.bufferSize)

	records := make([]interface{}, 0, 64)
	lineNum := 0

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		s.bytesRead += int64(len(line))

		var record interface{}
		if err := jsonpool.Unmarshal(line, &record); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeParse, "failed to parse JSON line").
				WithDetail("path", s.filePath).
				WithDetail("line", lineNum)
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read input file").WithDetail("path", s.filePath)
	}

	return records, nil
}

// Health reports whether the source file is open.
func (s *Source) Health(ctx context.Context) error {
	if s.file == nil {
		return errors.New(errors.ErrorTypeFile, "input file not open")
	}
	return nil
}

// Close closes the input file.
func (s *Source) Close(ctx context.Context) error {
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to close input file")
		}
		s.file = nil
	}
	return nil
}
