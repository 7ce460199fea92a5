// Package strings provides pooled string building and value-to-text
// conversion for Nova. Every value that ends up in a CSV cell passes through
// ValueToString, so the fast paths here avoid fmt and reflection for the
// common decoded-JSON types.
package strings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// builderPool reuses strings.Builder instances across conversions.
var builderPool = sync.Pool{
	New: func() interface{} {
		b := &strings.Builder{}
		b.Grow(256)
		return b
	},
}

// maxPooledBuilderCap caps the size of builders returned to the pool.
const maxPooledBuilderCap = 64 * 1024

// GetBuilder gets a pooled string builder.
func GetBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

// PutBuilder returns a builder to the pool.
func PutBuilder(b *strings.Builder) {
	if b.Cap() > maxPooledBuilderCap {
		return
	}
	builderPool.Put(b)
}

// Sprintf formats using a pooled builder instead of allocating through fmt.Sprintf.
func Sprintf(format string, args ...interface{}) string {
	b := GetBuilder()
	fmt.Fprintf(b, format, args...)
	s := b.String()
	PutBuilder(b)
	return s
}

// ValueToString converts a decoded value to its text form. Nil renders as
// the empty string, which is also the absent-column marker in CSV output.
func ValueToString(value interface{}) string {
	if value == nil {
		return ""
	}

	// Fast path for common types - avoid reflection and fmt overhead
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []byte:
		return string(v)
	default:
		// Fallback to pooled sprintf for complex types
		return Sprintf("%v", value)
	}
}

// JoinScalars joins scalar values with the given separator, converting each
// through ValueToString.
func JoinScalars(values []interface{}, sep string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return ValueToString(values[0])
	}

	b := GetBuilder()
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(ValueToString(v))
	}
	s := b.String()
	PutBuilder(b)
	return s
}
