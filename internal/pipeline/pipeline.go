// Package pipeline provides the conversion driver for Nova, orchestrating
// the flow from a loaded value tree to reconciled tabular output.
//
// The flow is a single-pass synchronous transform:
//
//  1. The source loads the decoded input tree.
//  2. The tree is normalized to a record sequence: a lone object becomes a
//     one-element sequence, array elements that are not objects are wrapped
//     as {"value": element}, and any other top-level shape is rejected.
//  3. Each record is exploded (if an explode field is configured) and
//     flattened under the run's policy.
//  4. The accumulated rows are reconciled into a sorted header and padded
//     rows, which are handed to the destination.
//
// Records flatten independently of one another; the only ordering-sensitive
// step is the header union in Reconcile, which is deterministic regardless
// of row order. A Converter holds no cross-run state, so each Run is
// independent given independent inputs.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/nova/pkg/config"
	"github.com/ajitpratap0/nova/pkg/connector/core"
	"github.com/ajitpratap0/nova/pkg/errors"
	"github.com/ajitpratap0/nova/pkg/flatten"
	"github.com/ajitpratap0/nova/pkg/metrics"
	"github.com/ajitpratap0/nova/pkg/models"
)

// Converter drives one conversion from source to destination.
type Converter struct {
	source      core.Source
	destination core.Destination

	policy       flatten.Policy
	explodeField string
	batchSize    int

	sourceName      string
	destinationName string
	enableMetrics   bool

	// Run statistics
	recordsIn      int64
	recordsDropped int64
	rowsOut        int64
	columns        int
	duration       time.Duration

	logger *zap.Logger
}

// NewConverter creates a converter for the given collaborators and
// configuration. The policy must already be validated by config.Validate.
func NewConverter(source core.Source, destination core.Destination, cfg *config.BaseConfig, logger *zap.Logger) (*Converter, error) {
	policy, err := flatten.ParsePolicy(cfg.Flatten.Policy)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	batchSize := cfg.Performance.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}

	return &Converter{
		source:          source,
		destination:     destination,
		policy:          policy,
		explodeField:    cfg.Flatten.ExplodeField,
		batchSize:       batchSize,
		sourceName:      cfg.Source.Format,
		destinationName: cfg.Output.Format,
		enableMetrics:   cfg.Observability.EnableMetrics,
		logger:          logger,
	}, nil
}

// Run executes the conversion. Source and destination must already be
// initialized; errors from either are propagated unchanged.
func (c *Converter) Run(ctx context.Context) error {
	timer := metrics.NewTimer()

	c.logger.Info("starting conversion",
		zap.String("policy", c.policy.String()),
		zap.String("explode_field", c.explodeField))

	tree, err := c.source.Load(ctx)
	if err != nil {
		return err
	}

	batch, err := c.normalize(tree)
	if err != nil {
		return err
	}
	c.recordsIn = int64(batch.Size())

	if batch.Size() == 0 {
		return errors.New(errors.ErrorTypeEmptyInput, "input contains no records")
	}

	rows := make([]models.FlatRow, 0, c.batchSize)
	for _, record := range batch.Records {
		recordRows := c.convertRecord(record.Data)
		if len(recordRows) == 0 {
			c.recordsDropped++
			c.logger.Debug("record produced no rows",
				zap.String("explode_field", c.explodeField))
			continue
		}
		rows = append(rows, recordRows...)
	}

	header, cells, err := flatten.Reconcile(rows)
	if err != nil {
		return err
	}
	c.rowsOut = int64(len(cells))
	c.columns = len(header)

	if err := c.destination.Write(ctx, header, cells); err != nil {
		return err
	}

	c.duration = timer.Stop()

	if c.enableMetrics {
		metrics.RecordsProcessed.WithLabelValues(c.sourceName, c.policy.String()).Add(float64(c.recordsIn))
		metrics.RowsEmitted.WithLabelValues(c.destinationName).Add(float64(c.rowsOut))
		metrics.RecordsDropped.WithLabelValues("empty_explode_array").Add(float64(c.recordsDropped))
		metrics.ConversionDuration.WithLabelValues(c.destinationName).Observe(c.duration.Seconds())
	}

	c.logger.Info("conversion completed",
		zap.Int64("records_in", c.recordsIn),
		zap.Int64("rows_out", c.rowsOut),
		zap.Int("columns", c.columns),
		zap.Int64("records_dropped", c.recordsDropped),
		zap.Duration("duration", c.duration))

	return nil
}

// convertRecord flattens one record, exploding it first when an explode
// field is configured. Exploding a record on an empty array yields zero
// rows, which drops the record.
func (c *Converter) convertRecord(record map[string]interface{}) []models.FlatRow {
	if c.explodeField == "" {
		return []models.FlatRow{flatten.Flatten(record, c.policy)}
	}

	exploded := flatten.Explode(record, c.explodeField)
	rows := make([]models.FlatRow, 0, len(exploded))
	for _, r := range exploded {
		rows = append(rows, flatten.Flatten(r, c.policy))
	}
	return rows
}

// normalize converts the loaded tree into a record batch. A single
// object becomes a one-element batch; inside a top-level array,
// non-object elements are wrapped as a synthetic single-field record
// rather than rejected.
func (c *Converter) normalize(tree interface{}) (*models.RecordBatch, error) {
	switch v := tree.(type) {
	case map[string]interface{}:
		batch := models.NewRecordBatch(1)
		batch.AddRecord(models.NewRecord(c.sourceName, v))
		return batch, nil
	case []interface{}:
		batch := models.NewRecordBatch(len(v))
		for i, elem := range v {
			obj, ok := elem.(map[string]interface{})
			if !ok {
				obj = map[string]interface{}{"value": elem}
			}
			record := models.NewRecord(c.sourceName, obj)
			record.Metadata.Custom["index"] = i
			batch.AddRecord(record)
		}
		return batch, nil
	default:
		return nil, errors.New(errors.ErrorTypeInvalidShape, "top-level value must be an object or an array of objects")
	}
}

// Metrics returns run statistics for the last completed conversion.
func (c *Converter) Metrics() map[string]interface{} {
	return map[string]interface{}{
		"records_in":      c.recordsIn,
		"records_dropped": c.recordsDropped,
		"rows_out":        c.rowsOut,
		"columns":         c.columns,
		"duration":        c.duration.String(),
		"policy":          c.policy.String(),
		"explode_field":   c.explodeField,
	}
}
