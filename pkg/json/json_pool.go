// Package json provides high-performance JSON serialization with pooled
// decoders, built on goccy/go-json. Decoders use UseNumber so numeric input
// survives as json.Number and renders without floating point artifacts.
package json

import (
	"bytes"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
)

// decoderPool reuses decoder wrappers across loads.
var decoderPool = sync.Pool{
	New: func() interface{} {
		return &pooledDecoder{}
	},
}

// pooledDecoder wraps a JSON decoder
type pooledDecoder struct {
	decoder *gojson.Decoder
}

// GetDecoder gets a pooled JSON decoder reading from r.
func GetDecoder(r io.Reader) *gojson.Decoder {
	pd := decoderPool.Get().(*pooledDecoder)

	// Always create a new decoder with the specified reader
	pd.decoder = gojson.NewDecoder(r)
	pd.decoder.UseNumber()

	return pd.decoder
}

// PutDecoder returns a decoder to the pool
func PutDecoder(dec *gojson.Decoder) {
	decoderPool.Put(&pooledDecoder{decoder: dec})
}

// Marshal is a high-performance drop-in replacement for json.Marshal
func Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

// MarshalToString marshals v and returns the result as a string.
func MarshalToString(v interface{}) (string, error) {
	data, err := gojson.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Unmarshal decodes data into v. Numbers decode as json.Number, matching
// the pooled decoder behavior.
func Unmarshal(data []byte, v interface{}) error {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
