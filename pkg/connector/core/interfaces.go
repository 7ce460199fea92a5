// Package core defines the connector contracts for Nova.
//
// The conversion core is a pure in-memory transform; everything touching
// the outside world sits behind two interfaces. A Source loads an
// already-decoded tree of records, and a Destination persists an ordered
// header plus rows of text cells. The core never parses raw bytes and
// never opens files itself.
package core

import (
	"context"

	"github.com/ajitpratap0/nova/pkg/config"
)

// Source is the input collaborator: it produces a parsed value tree.
type Source interface {
	// Initialize prepares the source from configuration
	Initialize(ctx context.Context, cfg *config.BaseConfig) error

	// Load returns the decoded input tree: a map[string]interface{}, an
	// []interface{}, or any scalar (which the driver will reject). Failures
	// surface as typed parse/not_found/file errors and are never recovered
	// from by the core.
	Load(ctx context.Context) (interface{}, error)

	// Health reports whether the source is usable
	Health(ctx context.Context) error

	// Close releases source resources
	Close(ctx context.Context) error
}

// Destination is the output collaborator: it persists reconciled rows.
type Destination interface {
	// Initialize prepares the destination from configuration
	Initialize(ctx context.Context, cfg *config.BaseConfig) error

	// Write persists one header line followed by one line per row. Field
	// escaping is the destination's concern.
	Write(ctx context.Context, header []string, rows [][]string) error

	// Health reports whether the destination is usable
	Health(ctx context.Context) error

	// Close flushes and releases destination resources
	Close(ctx context.Context) error
}
