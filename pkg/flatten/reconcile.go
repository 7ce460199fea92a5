package flatten

import (
	"sort"

	"github.com/ajitpratap0/nova/pkg/errors"
	"github.com/ajitpratap0/nova/pkg/models"
	stringpool "github.com/ajitpratap0/nova/pkg/strings"
)

// Reconcile computes the common header across heterogeneous flat rows and
// aligns each row to it. The header is the sorted (byte-order) union of all
// keys, so output ordering is deterministic regardless of row arrival order.
// Keys missing from a row render as the empty string, keeping CSV output
// unambiguous.
//
// Zero input rows is an error: emitting a header-less file would be
// indistinguishable from a legitimately empty table.
func Reconcile(rows []models.FlatRow) ([]string, [][]string, error) {
	if len(rows) == 0 {
		return nil, nil, errors.New(errors.ErrorTypeEmptyInput, "no rows to reconcile")
	}

	columns := make(map[string]struct{})
	for _, row := range rows {
		for key := range row {
			columns[key] = struct{}{}
		}
	}

	header := make([]string, 0, len(columns))
	for key := range columns {
		header = append(header, key)
	}
	sort.Strings(header)

	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(header))
		for j, column := range header {
			if value, ok := row[column]; ok {
				cells[j] = stringpool.ValueToString(value)
			}
		}
		out[i] = cells
	}

	return header, out, nil
}
