// Package nova converts hierarchical JSON records into flat tabular rows
// suitable for CSV and spreadsheet consumption.
//
// There is no single canonical mapping from an arbitrarily nested tree to a
// flat table: nested objects can flatten by key-path concatenation, and
// arrays can become joined strings, indexed columns, embedded JSON text, or
// extra rows. Nova implements these mapping policies and lets the caller
// pick one per conversion.
//
// # Architecture
//
// The core is a pure in-memory transform in pkg/flatten: Flatten collapses
// one record into a dotted-path row under a policy, Explode turns a record
// with an array field into one record per element, and Reconcile computes
// the deterministic sorted column union across heterogeneous rows. The
// driver in internal/pipeline orchestrates a run; file I/O lives behind the
// Source and Destination connector interfaces in pkg/connector.
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/ajitpratap0/nova/internal/pipeline"
//	    "github.com/ajitpratap0/nova/pkg/config"
//	    "github.com/ajitpratap0/nova/pkg/connector/registry"
//	)
//
//	cfg := config.NewBaseConfig("orders", "conversion")
//	cfg.Source.Path = "orders.json"
//	cfg.Output.Path = "orders.csv"
//	cfg.Flatten.Policy = "columns"
//
//	source, _ := registry.CreateSource("json", cfg)
//	destination, _ := registry.CreateDestination("csv", cfg)
//
//	ctx := context.Background()
//	_ = source.Initialize(ctx, cfg)
//	_ = destination.Initialize(ctx, cfg)
//
//	converter, _ := pipeline.NewConverter(source, destination, cfg, nil)
//	_ = converter.Run(ctx)
//
// Or from the command line:
//
//	nova convert -i orders.json -o orders.csv --policy columns
package nova
