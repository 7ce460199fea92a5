// Package models provides the data model for Nova conversions.
//
// A Record is one unit of conversion: a decoded JSON object plus metadata
// about where it came from. Record data uses the natural decoded-JSON value
// universe: nil, bool, json.Number (or float64), string, []interface{} and
// map[string]interface{}. Trees are built once per input load and are not
// mutated afterwards; the flattening core builds fresh FlatRows from them.
package models

import "time"

// FlatRow is a single-level mapping produced by flattening one record.
// Keys are dotted paths (or indexed paths like "tags_0") and values are
// scalars or the serialized text form of a nested value, never a nested
// object or array.
type FlatRow = map[string]interface{}

// Record represents a single unit of data flowing through a conversion.
type Record struct {
	// Data holds the decoded record fields
	Data map[string]interface{}

	// Metadata carries provenance information
	Metadata RecordMetadata
}

// RecordMetadata holds provenance information for a record.
type RecordMetadata struct {
	// Source names the connector that produced the record
	Source string

	// Timestamp is when the record was loaded
	Timestamp time.Time

	// Custom holds connector-specific metadata (file path, line number, ...)
	Custom map[string]interface{}
}

// NewRecord creates a record with the given source and data.
func NewRecord(source string, data map[string]interface{}) *Record {
	return &Record{
		Data: data,
		Metadata: RecordMetadata{
			Source:    source,
			Timestamp: time.Now(),
			Custom:    make(map[string]interface{}),
		},
	}
}

// RecordBatch accumulates records during a conversion run.
type RecordBatch struct {
	Records []*Record
}

// NewRecordBatch creates a batch with the specified capacity.
func NewRecordBatch(capacity int) *RecordBatch {
	return &RecordBatch{Records: make([]*Record, 0, capacity)}
}

// AddRecord appends a record to the batch.
func (rb *RecordBatch) AddRecord(r *Record) {
	rb.Records = append(rb.Records, r)
}

// Reset clears the batch for reuse without deallocating memory.
func (rb *RecordBatch) Reset() {
	rb.Records = rb.Records[:0]
}

// Size returns the current number of records in the batch.
func (rb *RecordBatch) Size() int {
	return len(rb.Records)
}
