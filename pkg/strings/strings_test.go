package strings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueToString(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{nil, ""},
		{"text", "text"},
		{json.Number("1"), "1"},
		{json.Number("2.5"), "2.5"},
		{json.Number("123456789012345678"), "123456789012345678"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint64(7), "7"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
		{[]byte("raw"), "raw"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValueToString(tt.value))
	}
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "a=1 b=x", Sprintf("a=%d b=%s", 1, "x"))
}

func TestJoinScalars(t *testing.T) {
	assert.Equal(t, "", JoinScalars(nil, ", "))
	assert.Equal(t, "solo", JoinScalars([]interface{}{"solo"}, ", "))
	assert.Equal(t, "a, b, c", JoinScalars([]interface{}{"a", "b", "c"}, ", "))
	assert.Equal(t, "1, , true", JoinScalars([]interface{}{1, nil, true}, ", "))
}

func TestBuilderPoolReuse(t *testing.T) {
	b := GetBuilder()
	b.WriteString("stale")
	PutBuilder(b)

	b2 := GetBuilder()
	assert.Equal(t, 0, b2.Len())
	PutBuilder(b2)
}
