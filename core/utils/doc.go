// Package utils provides common utility functions for the audiobook exporter.
// It includes tolerant scalar conversions used when walking decoded metadata
// documents, where a type mismatch is a soft miss rather than an error.
//
// Numbers are never truncated: ToUint32 treats a value above math.MaxUint32
// as a miss, so an oversized track or disc number reads as absent (0).
package utils
