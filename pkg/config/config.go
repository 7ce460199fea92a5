// Package config provides the unified configuration system for Nova.
// It defines a single BaseConfig structure shared by connectors and the
// conversion pipeline, organized into logical sections:
//   - Source: where the input tree comes from and its format
//   - Flatten: the array-handling policy and optional explode field
//   - Output: where flattened rows go and in what shape
//   - Performance: buffer and batch sizing
//   - Observability: logging and metrics
//   - Advanced: optional features like compressed output
//
// Example usage:
//
//	cfg := config.NewBaseConfig("orders", "conversion")
//	cfg.Source.Path = "orders.json"
//	cfg.Flatten.Policy = "columns"
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import "fmt"

// Flatten policy names accepted by FlattenConfig.Policy. They mirror the
// policies in pkg/flatten; the string form is what appears in config files
// and on the command line.
const (
	PolicyDot       = "dot"
	PolicyColumns   = "columns"
	PolicySerialize = "serialize"
)

// Input format names accepted by SourceConfig.Format.
const (
	// FormatDocument is a single JSON value: an object or an array of records.
	FormatDocument = "document"
	// FormatLines is line-delimited JSON (JSONL/NDJSON), one record per line.
	FormatLines = "lines"
)

// BaseConfig is the single unified configuration structure for a conversion.
type BaseConfig struct {
	// Name identifies the conversion instance
	Name string `yaml:"name" json:"name"`
	// Type specifies the config type (e.g., "conversion")
	Type string `yaml:"type" json:"type"`
	// Version indicates the configuration version
	Version string `yaml:"version" json:"version"`

	// Source describes the input collaborator
	Source SourceConfig `yaml:"source" json:"source"`

	// Flatten controls the tree-to-row mapping
	Flatten FlattenConfig `yaml:"flatten" json:"flatten"`

	// Output describes the output collaborator
	Output OutputConfig `yaml:"output" json:"output"`

	// Performance settings control buffering and batching
	Performance PerformanceConfig `yaml:"performance" json:"performance"`

	// Observability settings for logging and metrics
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`

	// Advanced features and optimizations
	Advanced AdvancedConfig `yaml:"advanced" json:"advanced"`
}

// SourceConfig describes where the input tree is loaded from.
type SourceConfig struct {
	// Path is the input file location
	Path string `yaml:"path" json:"path"`
	// Format selects the input layout: "document" or "lines"
	Format string `yaml:"format" json:"format"`
}

// FlattenConfig controls how nested values become flat columns.
type FlattenConfig struct {
	// Policy selects the array-handling strategy: "dot", "columns" or "serialize"
	Policy string `yaml:"policy" json:"policy"`
	// ExplodeField, when set, produces one output row per element of this
	// array-valued field
	ExplodeField string `yaml:"explode_field" json:"explode_field"`
}

// OutputConfig describes where flattened rows are written.
type OutputConfig struct {
	// Path is the output file location (unused by the table format)
	Path string `yaml:"path" json:"path"`
	// Format selects the destination connector: "csv" or "table"
	Format string `yaml:"format" json:"format"`
	// Delimiter is the CSV field separator, a single character
	Delimiter string `yaml:"delimiter" json:"delimiter"`
}

// PerformanceConfig contains performance-related settings.
type PerformanceConfig struct {
	// BufferSize sets the size of the input read buffer in bytes
	BufferSize int `yaml:"buffer_size" json:"buffer_size"`
	// BatchSize is the row accumulation hint for preallocation
	BatchSize int `yaml:"batch_size" json:"batch_size"`
}

// ObservabilityConfig contains logging and metrics settings.
type ObservabilityConfig struct {
	// EnableLogging controls logging output
	EnableLogging bool `yaml:"enable_logging" json:"enable_logging"`
	// EnableMetrics activates prometheus metrics collection
	EnableMetrics bool `yaml:"enable_metrics" json:"enable_metrics"`
	// LogLevel sets logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// AdvancedConfig contains optional advanced features.
type AdvancedConfig struct {
	// EnableCompression compresses the output file
	EnableCompression bool `yaml:"enable_compression" json:"enable_compression"`
	// CompressionAlgorithm selects compression type (gzip, zstd, snappy, lz4)
	CompressionAlgorithm string `yaml:"compression_algorithm" json:"compression_algorithm"`
	// CompressionLevel sets compression ratio vs speed (1-9)
	CompressionLevel int `yaml:"compression_level" json:"compression_level"`
	// Debug enables detailed debug output
	Debug bool `yaml:"debug" json:"debug"`
}

// NewBaseConfig creates a BaseConfig with sensible defaults.
func NewBaseConfig(name, configType string) *BaseConfig {
	return &BaseConfig{
		Name:    name,
		Type:    configType,
		Version: "1.0.0",
		Source: SourceConfig{
			Format: FormatDocument,
		},
		Flatten: FlattenConfig{
			Policy: PolicyDot,
		},
		Output: OutputConfig{
			Format:    "csv",
			Delimiter: ",",
		},
		Performance: PerformanceConfig{
			BufferSize: 64 * 1024,
			BatchSize:  1000,
		},
		Observability: ObservabilityConfig{
			EnableLogging: true,
			EnableMetrics: false,
			LogLevel:      "info",
		},
		Advanced: AdvancedConfig{
			EnableCompression:    false,
			CompressionAlgorithm: "gzip",
			CompressionLevel:     6,
		},
	}
}

// Validate validates the configuration for correctness.
func (bc *BaseConfig) Validate() error {
	if bc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if bc.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}
	switch bc.Source.Format {
	case FormatDocument, FormatLines:
	default:
		return fmt.Errorf("source.format must be %q or %q, got %q", FormatDocument, FormatLines, bc.Source.Format)
	}
	switch bc.Flatten.Policy {
	case PolicyDot, PolicyColumns, PolicySerialize:
	default:
		return fmt.Errorf("flatten.policy must be one of dot, columns, serialize, got %q", bc.Flatten.Policy)
	}
	switch bc.Output.Format {
	case "csv":
		if bc.Output.Path == "" {
			return fmt.Errorf("output.path is required for csv output")
		}
	case "table":
	default:
		return fmt.Errorf("output.format must be csv or table, got %q", bc.Output.Format)
	}
	if len([]rune(bc.Output.Delimiter)) != 1 {
		return fmt.Errorf("output.delimiter must be a single character, got %q", bc.Output.Delimiter)
	}
	if bc.Performance.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be positive")
	}
	if bc.Performance.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive")
	}
	if bc.Advanced.EnableCompression {
		if bc.Advanced.CompressionLevel < 1 || bc.Advanced.CompressionLevel > 9 {
			return fmt.Errorf("compression_level must be between 1 and 9")
		}
	}
	return nil
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (o *OutputConfig) DelimiterRune() rune {
	for _, r := range o.Delimiter {
		return r
	}
	return ','
}
