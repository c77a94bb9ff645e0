// Package codec encodes corner table snapshots for external viewers.
//
// Snapshots are display output only: nothing in cornertable reads them back
// into a table.
package codec

import "io"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// Encode writes v to w followed by a newline.
	Encode(w io.Writer, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
