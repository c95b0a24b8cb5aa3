// Package document reads property-list metadata files into a generic tree.
//
// Apple Books describes its library in Books.plist, a dictionary whose values
// are arrays, nested dictionaries and scalars. The package decodes the file
// with howett.net/plist and exposes each node as a Value with
// capability-checked accessors (Dict, Array, Str, Uint).
//
// # Soft misses
//
// None of the accessors fail. A missing key or a node of the wrong kind is
// reported through the boolean result, so extractors can apply defaults
// without error plumbing:
//
//	root, _ := document.Decode(f)
//	dict, ok := root.Dict()
//	if !ok {
//	    return errors.New("root is not a dictionary")
//	}
//	author := dict.String("artistName", "Unknown Author")
package document
