package flatten

import (
	"strconv"

	jsonpool "github.com/ajitpratap0/nova/pkg/json"
	"github.com/ajitpratap0/nova/pkg/models"
	stringpool "github.com/ajitpratap0/nova/pkg/strings"
)

// Separator joins parent path segments in flattened keys.
const Separator = "."

// scalarJoinSeparator joins scalar array elements under PolicyDotJoin.
const scalarJoinSeparator = ", "

// Flatten collapses a nested record into a single-level row keyed by
// dot-joined paths. Scalars pass through unchanged; nested objects recurse
// with an extended prefix; arrays are handled per the policy. Empty objects
// and empty arrays produce no entry for their path, so callers must not
// assume every input key reappears in the output row.
func Flatten(record map[string]interface{}, policy Policy) models.FlatRow {
	row := make(models.FlatRow, len(record))
	flattenObject(row, "", record, policy)
	return row
}

func flattenObject(row models.FlatRow, prefix string, obj map[string]interface{}, policy Policy) {
	for key, value := range obj {
		name := key
		if prefix != "" {
			name = prefix + Separator + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			flattenObject(row, name, v, policy)
		case []interface{}:
			flattenArray(row, name, v, policy)
		default:
			row[name] = v
		}
	}
}

func flattenArray(row models.FlatRow, name string, arr []interface{}, policy Policy) {
	if len(arr) == 0 {
		return
	}

	switch policy {
	case PolicyDotJoin:
		if allScalars(arr) {
			row[name] = stringpool.JoinScalars(arr, scalarJoinSeparator)
		} else {
			row[name] = serialize(arr)
		}

	case PolicyIndexedColumns:
		for i, elem := range arr {
			indexed := name + "_" + strconv.Itoa(i)
			switch e := elem.(type) {
			case map[string]interface{}:
				flattenObject(row, indexed, e, policy)
			case []interface{}:
				// Rows never carry nested values, so an array inside an
				// array keeps its serialized text form.
				if len(e) > 0 {
					row[indexed] = serialize(e)
				}
			default:
				row[indexed] = e
			}
		}

	case PolicySerialize:
		row[name] = serialize(arr)
	}
}

// allScalars reports whether every element is a scalar (nil, bool, number
// or text).
func allScalars(arr []interface{}) bool {
	for _, elem := range arr {
		switch elem.(type) {
		case map[string]interface{}, []interface{}:
			return false
		}
	}
	return true
}

// serialize renders a nested value as JSON text. Values decoded from JSON
// always marshal cleanly; anything else falls back to its fmt rendering.
func serialize(v interface{}) string {
	s, err := jsonpool.MarshalToString(v)
	if err != nil {
		return stringpool.Sprintf("%v", v)
	}
	return s
}
