// Package flatten implements the core tree-to-row transformation for Nova.
//
// It converts nested record data (objects, arrays, scalars) into flat
// key-value rows suitable for tabular output. There is no single canonical
// mapping from an arbitrary tree to a table, so array handling is governed
// by a Policy chosen once per conversion:
//
//   - PolicyDotJoin: scalar arrays join into one comma-separated cell,
//     mixed arrays serialize to JSON text
//   - PolicyIndexedColumns: each array element gets its own indexed column
//     (tags_0, tags_1, ...)
//   - PolicySerialize: every array serializes to JSON text
//
// Nested objects always flatten by dot-joined key paths (address.city).
//
// The package also provides Explode, which turns one record with an
// array-valued field into one record per element, and Reconcile, which
// computes the deterministic sorted column union across heterogeneous rows
// and pads each row to it.
package flatten
