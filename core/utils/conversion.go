package utils

import (
	"math"
	"strings"
)

// ToUint64 converts a decoded scalar to uint64 using explicit type switching.
// Unsigned integers always convert; signed integers convert when non-negative.
// Floats, strings and every other type report ok=false instead of guessing.
func ToUint64(val any) (uint64, bool) {
	switch v := val.(type) {
	case uint64:
		return v, true
	case uint32:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int32:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int16:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int8:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// ToUint32 narrows ToUint64. Values above math.MaxUint32 are a miss.
func ToUint32(val any) (uint32, bool) {
	n, ok := ToUint64(val)
	if !ok || n > math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}

// ToString returns val when it is a string. Raw data blobs are not text and
// are a miss like every other type.
func ToString(val any) (string, bool) {
	s, ok := val.(string)
	return s, ok
}

// IsBlank reports whether s has no non-whitespace characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
