package ocsf

import (
	"bytes"
	"encoding/json"
)

// Marshal renders a record in its canonical JSON form: keys in struct
// declaration order, absent optionals omitted, no HTML escaping and no
// trailing newline. The output minifies to a byte-stable reference string
// for any given field values.
//
// The error return exists only to satisfy callers that refuse to ignore
// it; serialization cannot fail for constructed event values.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
