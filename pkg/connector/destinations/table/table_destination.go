// Package table provides a stdout table destination for previewing
// conversions without writing a file.
package table

import (
	"context"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/ajitpratap0/nova/pkg/config"
	"github.com/ajitpratap0/nova/pkg/connector/core"
	"github.com/ajitpratap0/nova/pkg/errors"
)

// Destination renders reconciled rows as an aligned text table. It is
// meant for interactive inspection of a conversion; the csv destination is
// the one for machine consumption.
type Destination struct {
	config *config.BaseConfig
	out    io.Writer
}

// NewDestination creates a table destination from configuration.
func NewDestination(cfg *config.BaseConfig) (core.Destination, error) {
	return &Destination{config: cfg, out: os.Stdout}, nil
}

// Initialize prepares the destination.
func (d *Destination) Initialize(ctx context.Context, cfg *config.BaseConfig) error {
	d.config = cfg
	if d.out == nil {
		d.out = os.Stdout
	}
	return nil
}

// SetOutput redirects table rendering, used by tests.
func (d *Destination) SetOutput(w io.Writer) {
	d.out = w
}

// Write renders the header and rows as a text table.
func (d *Destination) Write(ctx context.Context, header []string, rows [][]string) error {
	if d.out == nil {
		return errors.New(errors.ErrorTypeFile, "destination not initialized")
	}

	table := tablewriter.NewWriter(d.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	return nil
}

// Health reports whether the destination is usable.
func (d *Destination) Health(ctx context.Context) error {
	if d.out == nil {
		return errors.New(errors.ErrorTypeFile, "destination output not set")
	}
	return nil
}

// Close is a no-op; stdout is not ours to close.
func (d *Destination) Close(ctx context.Context) error {
	return nil
}
