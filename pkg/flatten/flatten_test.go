package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenNestedObjects(t *testing.T) {
	record := map[string]interface{}{
		"id":   1,
		"name": "John Doe",
		"address": map[string]interface{}{
			"street": "123 Main St",
			"city":   "Boston",
			"coordinates": map[string]interface{}{
				"lat": 42.3601,
				"lng": -71.0589,
			},
		},
	}

	for _, policy := range []Policy{PolicyDotJoin, PolicyIndexedColumns, PolicySerialize} {
		row := Flatten(record, policy)

		assert.Equal(t, 1, row["id"])
		assert.Equal(t, "John Doe", row["name"])
		assert.Equal(t, "123 Main St", row["address.street"])
		assert.Equal(t, "Boston", row["address.city"])
		assert.Equal(t, 42.3601, row["address.coordinates.lat"])
		assert.Equal(t, -71.0589, row["address.coordinates.lng"])
	}
}

func TestFlattenDotJoinScalarArray(t *testing.T) {
	record := map[string]interface{}{
		"id":   1,
		"tags": []interface{}{"a", "b"},
	}

	row := Flatten(record, PolicyDotJoin)

	assert.Equal(t, map[string]interface{}{
		"id":   1,
		"tags": "a, b",
	}, row)
}

func TestFlattenDotJoinMixedArraySerializes(t *testing.T) {
	record := map[string]interface{}{
		"contacts": []interface{}{
			map[string]interface{}{"type": "email"},
		},
	}

	row := Flatten(record, PolicyDotJoin)

	assert.Equal(t, `[{"type":"email"}]`, row["contacts"])
}

func TestFlattenDotJoinNullElementsAreScalars(t *testing.T) {
	record := map[string]interface{}{
		"vals": []interface{}{"a", nil, true},
	}

	row := Flatten(record, PolicyDotJoin)

	assert.Equal(t, "a, , true", row["vals"])
}

func TestFlattenIndexedColumns(t *testing.T) {
	record := map[string]interface{}{
		"id":   1,
		"tags": []interface{}{"a", "b"},
	}

	row := Flatten(record, PolicyIndexedColumns)

	assert.Equal(t, map[string]interface{}{
		"id":     1,
		"tags_0": "a",
		"tags_1": "b",
	}, row)
}

func TestFlattenIndexedColumnsObjectElements(t *testing.T) {
	record := map[string]interface{}{
		"contacts": []interface{}{
			map[string]interface{}{"type": "email", "value": "john@example.com"},
			map[string]interface{}{"type": "phone", "value": "555-1234"},
		},
	}

	row := Flatten(record, PolicyIndexedColumns)

	assert.Equal(t, "email", row["contacts_0.type"])
	assert.Equal(t, "john@example.com", row["contacts_0.value"])
	assert.Equal(t, "phone", row["contacts_1.type"])
	assert.Equal(t, "555-1234", row["contacts_1.value"])
}

func TestFlattenSerializeAlways(t *testing.T) {
	record := map[string]interface{}{
		"tags": []interface{}{"a", "b"},
		"contacts": []interface{}{
			map[string]interface{}{"type": "email"},
		},
	}

	row := Flatten(record, PolicySerialize)

	assert.Equal(t, `["a","b"]`, row["tags"])
	assert.Equal(t, `[{"type":"email"}]`, row["contacts"])
}

func TestFlattenSerializeNeverLeavesNestedValues(t *testing.T) {
	record := map[string]interface{}{
		"a": map[string]interface{}{
			"b": []interface{}{
				map[string]interface{}{"c": []interface{}{1, 2}},
			},
		},
		"d": []interface{}{[]interface{}{"x"}, "y"},
		"e": "scalar",
	}

	row := Flatten(record, PolicySerialize)

	require.NotEmpty(t, row)
	for key, value := range row {
		switch value.(type) {
		case map[string]interface{}, []interface{}:
			t.Errorf("key %q holds a nested value: %#v", key, value)
		}
	}
}

func TestFlattenIdempotentOnFlatRecord(t *testing.T) {
	record := map[string]interface{}{
		"id":     1,
		"name":   "Jane",
		"active": true,
		"score":  9.5,
		"note":   nil,
	}

	for _, policy := range []Policy{PolicyDotJoin, PolicyIndexedColumns, PolicySerialize} {
		assert.Equal(t, record, map[string]interface{}(Flatten(record, policy)),
			"policy %s should not change an already-flat record", policy)
	}
}

func TestFlattenDropsEmptyLeaves(t *testing.T) {
	record := map[string]interface{}{
		"id":    1,
		"meta":  map[string]interface{}{},
		"tags":  []interface{}{},
		"inner": map[string]interface{}{"empty": []interface{}{}},
	}

	for _, policy := range []Policy{PolicyDotJoin, PolicyIndexedColumns, PolicySerialize} {
		row := Flatten(record, policy)
		assert.Equal(t, map[string]interface{}{"id": 1}, map[string]interface{}(row),
			"policy %s should drop empty objects and arrays", policy)
	}
}

func TestFlattenScalarsPassThroughUnchanged(t *testing.T) {
	record := map[string]interface{}{
		"s": "text",
		"b": false,
		"f": 3.25,
		"n": nil,
	}

	row := Flatten(record, PolicyDotJoin)

	assert.Equal(t, "text", row["s"])
	assert.Equal(t, false, row["b"])
	assert.Equal(t, 3.25, row["f"])
	val, present := row["n"]
	assert.True(t, present)
	assert.Nil(t, val)
}
