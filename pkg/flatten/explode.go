package flatten

// Explode turns one record with an array-valued field into one record per
// array element. For each element the field is removed from a copy of the
// record; object elements then merge their fields into the copy with the
// element winning on key collision, while scalar elements are re-inserted
// under the original field name.
//
// If the field is absent, or present but not an array, the record passes
// through unchanged as a single-element result. An empty array yields zero
// records: the source record is dropped rather than emitted with empty
// values. Callers relying on "every input record produces at least one
// output row" must special-case that.
func Explode(record map[string]interface{}, arrayField string) []map[string]interface{} {
	raw, present := record[arrayField]
	if !present {
		return []map[string]interface{}{record}
	}

	arr, ok := raw.([]interface{})
	if !ok {
		return []map[string]interface{}{record}
	}

	out := make([]map[string]interface{}, 0, len(arr))
	for _, elem := range arr {
		base := make(map[string]interface{}, len(record))
		for k, v := range record {
			if k != arrayField {
				base[k] = v
			}
		}

		if obj, isObject := elem.(map[string]interface{}); isObject {
			// Last-writer-wins: element fields take precedence over the
			// parent record's fields.
			for k, v := range obj {
				base[k] = v
			}
		} else {
			base[arrayField] = elem
		}

		out = append(out, base)
	}

	return out
}
