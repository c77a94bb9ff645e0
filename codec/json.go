package codec

import (
	"encoding/json"
	"io"
)

// JSON is the standard-library JSON codec.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Encode streams the value to w.
func (JSON) Encode(w io.Writer, v any) error { return json.NewEncoder(w).Encode(v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is used by the tables when no codec is given.
var Default Codec = GoJSON{}
