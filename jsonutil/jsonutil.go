// Package jsonutil wraps sonic with the encoding settings shared by the rest
// of the module: map keys are sorted so documents render deterministically and
// HTML characters are left unescaped so hrefs such as "/orders?a=1&b=2" stay
// readable on the wire. Invalid UTF-8 in strings is replaced with U+FFFD.
package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.Config{
	SortMapKeys:      true,
	CompactMarshaler: true,
	ValidateString:   true,
}.Froze()

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent is like Marshal but applies prefix and indent to each line.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses the JSON-encoded data and stores the result in v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// Encode writes the JSON encoding of v to w followed by a newline.
func Encode(w io.Writer, v any) error {
	return api.NewEncoder(w).Encode(v)
}

// Decode reads the next JSON value from r and stores it in v.
func Decode(r io.Reader, v any) error {
	return api.NewDecoder(r).Decode(v)
}
