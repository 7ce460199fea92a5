package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/nova/internal/pipeline"
	"github.com/ajitpratap0/nova/pkg/config"
	"github.com/ajitpratap0/nova/pkg/connector/registry"
	"github.com/ajitpratap0/nova/pkg/logger"

	// Import all available connectors to register them
	_ "github.com/ajitpratap0/nova/pkg/connector/destinations/csv"
	_ "github.com/ajitpratap0/nova/pkg/connector/destinations/table"
	_ "github.com/ajitpratap0/nova/pkg/connector/sources/json"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "nova",
		Short: "Nova - JSON flattening and tabulation tool",
		Long: `Nova converts hierarchical JSON records into flat tabular rows for CSV
and spreadsheet consumption. Nested objects flatten to dot-joined columns;
array handling is governed by a per-run policy, and records can optionally
be exploded into one row per element of an array field.`,
	}

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Nova v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// List command to show available connectors
	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available connectors",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available Source Connectors:")
			for _, source := range registry.ListSources() {
				fmt.Printf("  - %s\n", source)
			}
			fmt.Println("\nAvailable Destination Connectors:")
			for _, dest := range registry.ListDestinations() {
				fmt.Printf("  - %s\n", dest)
			}
		},
	})

	// Policies command to show flatten policies
	root.AddCommand(&cobra.Command{
		Use:   "policies",
		Short: "List array flattening policies",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Array flattening policies:")
			fmt.Printf("  - %s: join scalar arrays with %q, serialize mixed arrays to JSON\n", config.PolicyDot, ", ")
			fmt.Printf("  - %s: one column per array element (tags_0, tags_1, ...)\n", config.PolicyColumns)
			fmt.Printf("  - %s: serialize every array to JSON text\n", config.PolicySerialize)
		},
	})

	root.AddCommand(newConvertCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newConvertCommand builds the convert command and its flags.
func newConvertCommand() *cobra.Command {
	var configFile string
	var input, output, outputFormat, sourceFormat, policy, explodeField, delimiter string
	var logLevel, compressionAlgorithm string
	var compress bool
	var compressionLevel int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a JSON file to flat tabular output",
		Long: `Convert a JSON file (an object, an array of objects, or line-delimited
records) into flat rows with a deterministic sorted header.

Examples:
  nova convert -i data.json -o data.csv
  nova convert -i data.json -o data.csv --policy columns
  nova convert -i data.json -o data.csv --explode contacts
  nova convert -i data.json --format table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(configFile, convertFlags{
				input:                input,
				output:               output,
				outputFormat:         outputFormat,
				sourceFormat:         sourceFormat,
				policy:               policy,
				explodeField:         explodeField,
				delimiter:            delimiter,
				logLevel:             logLevel,
				compress:             compress,
				compressionAlgorithm: compressionAlgorithm,
				compressionLevel:     compressionLevel,
			})
			if err != nil {
				return err
			}
			return runConversion(cfg, timeout)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML configuration file (flags override its values)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the input JSON file (required unless set in --config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path to the output file (required for csv output)")
	cmd.Flags().StringVar(&outputFormat, "format", "", "Output format: csv or table (default csv)")
	cmd.Flags().StringVar(&sourceFormat, "source-format", "", "Input layout: document (single JSON value) or lines (NDJSON)")
	cmd.Flags().StringVarP(&policy, "policy", "p", "", "Array flattening policy: dot, columns or serialize (default dot)")
	cmd.Flags().StringVarP(&explodeField, "explode", "e", "", "Array field to explode into one row per element")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV field delimiter, a single character (default \",\")")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&compress, "compress", false, "Compress the output file")
	cmd.Flags().StringVar(&compressionAlgorithm, "compression-algorithm", "", "Compression algorithm: gzip, zstd, snappy or lz4 (default gzip)")
	cmd.Flags().IntVar(&compressionLevel, "compression-level", 0, "Compression level 1-9 (default 6)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Conversion timeout")

	return cmd
}

// convertFlags carries the convert command's flag values.
type convertFlags struct {
	input                string
	output               string
	outputFormat         string
	sourceFormat         string
	policy               string
	explodeField         string
	delimiter            string
	logLevel             string
	compress             bool
	compressionAlgorithm string
	compressionLevel     int
}

// buildConfig assembles the run configuration from an optional YAML file
// and command line flags; flags win over file values.
func buildConfig(configFile string, flags convertFlags) (*config.BaseConfig, error) {
	cfg := config.NewBaseConfig("nova-cli", "conversion")

	if configFile != "" {
		if err := config.Load(configFile, cfg); err != nil {
			return nil, err
		}
	}

	if flags.input != "" {
		cfg.Source.Path = flags.input
	}
	if flags.sourceFormat != "" {
		cfg.Source.Format = flags.sourceFormat
	}
	if flags.policy != "" {
		cfg.Flatten.Policy = flags.policy
	}
	if flags.explodeField != "" {
		cfg.Flatten.ExplodeField = flags.explodeField
	}
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.outputFormat != "" {
		cfg.Output.Format = flags.outputFormat
	}
	if flags.delimiter != "" {
		cfg.Output.Delimiter = flags.delimiter
	}
	if flags.logLevel != "" {
		cfg.Observability.LogLevel = flags.logLevel
	}
	if flags.compress {
		cfg.Advanced.EnableCompression = true
	}
	if flags.compressionAlgorithm != "" {
		cfg.Advanced.CompressionAlgorithm = flags.compressionAlgorithm
	}
	if flags.compressionLevel > 0 {
		cfg.Advanced.CompressionLevel = flags.compressionLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runConversion executes the conversion described by cfg.
func runConversion(cfg *config.BaseConfig, timeout time.Duration) error {
	if err := logger.Init(logger.Config{
		Level:    cfg.Observability.LogLevel,
		Encoding: "console",
	}); err != nil {
		return err
	}

	log := logger.Get().With(
		zap.String("component", "nova-cli"),
		zap.String("input", cfg.Source.Path),
		zap.String("output", cfg.Output.Format),
	)

	source, err := registry.CreateSource("json", cfg)
	if err != nil {
		return fmt.Errorf("failed to create source connector: %w", err)
	}

	destination, err := registry.CreateDestination(cfg.Output.Format, cfg)
	if err != nil {
		return fmt.Errorf("failed to create destination connector '%s': %w", cfg.Output.Format, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := source.Initialize(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialize source: %w", err)
	}

	if err := destination.Initialize(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialize destination: %w", err)
	}

	converter, err := pipeline.NewConverter(source, destination, cfg, log)
	if err != nil {
		return err
	}

	log.Info("executing conversion",
		zap.String("policy", cfg.Flatten.Policy),
		zap.String("explode_field", cfg.Flatten.ExplodeField))

	runErr := converter.Run(ctx)

	if err := source.Close(ctx); err != nil {
		log.Warn("failed to close source", zap.Error(err))
	}
	if err := destination.Close(ctx); err != nil {
		log.Warn("failed to close destination", zap.Error(err))
	}

	if runErr != nil {
		return fmt.Errorf("conversion failed: %w", runErr)
	}

	m := converter.Metrics()
	log.Info("conversion summary",
		zap.Any("records_in", m["records_in"]),
		zap.Any("rows_out", m["rows_out"]),
		zap.Any("columns", m["columns"]),
		zap.Any("duration", m["duration"]))

	return nil
}
