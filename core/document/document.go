package document

import (
	"fmt"
	"io"

	"audiobook-exporter/core/utils"

	"howett.net/plist"
)

// Value is one node of a decoded property list: a dictionary, an array or a
// scalar. Accessors never fail; a missing node or a type mismatch is reported
// through the ok result so callers can fall back to defaults.
type Value struct {
	raw any
}

// Dict is a decoded dictionary node.
type Dict map[string]any

// New wraps an already decoded tree. Dictionaries must be map[string]any and
// arrays []any, which is what the plist decoder produces.
func New(raw any) Value {
	return Value{raw: raw}
}

// Decode reads a property list in any supported format (XML, binary,
// OpenStep) and returns its root node.
func Decode(r io.ReadSeeker) (Value, error) {
	var raw any
	if err := plist.NewDecoder(r).Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("failed to decode property list: %w", err)
	}
	return New(raw), nil
}

// Raw returns the underlying decoded value.
func (v Value) Raw() any {
	return v.raw
}

// Dict returns the node as a dictionary.
func (v Value) Dict() (Dict, bool) {
	switch d := v.raw.(type) {
	case map[string]any:
		return Dict(d), true
	case Dict:
		return d, true
	default:
		return nil, false
	}
}

// Array returns the node as a list of child values.
func (v Value) Array() ([]Value, bool) {
	items, ok := v.raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = New(item)
	}
	return out, true
}

// Str returns the node as a string.
func (v Value) Str() (string, bool) {
	return utils.ToString(v.raw)
}

// Uint returns the node as an unsigned integer. Non-negative signed integers
// are accepted; every other kind is a miss.
func (v Value) Uint() (uint64, bool) {
	return utils.ToUint64(v.raw)
}

// Get looks up key.
func (d Dict) Get(key string) (Value, bool) {
	raw, ok := d[key]
	if !ok {
		return Value{}, false
	}
	return New(raw), true
}

// String returns the string stored at key, or def when the key is absent or
// not a string.
func (d Dict) String(key, def string) string {
	v, ok := d.Get(key)
	if !ok {
		return def
	}
	if s, ok := v.Str(); ok {
		return s
	}
	return def
}

// Uint32 returns the unsigned integer stored at key, or def when the key is
// absent, not an unsigned integer, or too large for uint32.
func (d Dict) Uint32(key string, def uint32) uint32 {
	v, ok := d.Get(key)
	if !ok {
		return def
	}
	if n, ok := utils.ToUint32(v.raw); ok {
		return n
	}
	return def
}

// Array returns the array stored at key.
func (d Dict) Array(key string) ([]Value, bool) {
	v, ok := d.Get(key)
	if !ok {
		return nil, false
	}
	return v.Array()
}
