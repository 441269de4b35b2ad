package repository

import (
	"bytes"
	"encoding/json"
)

// nullableJSON maps SQL NULL (nil) to a nil RawMessage and copies everything else
func nullableJSON(b []byte) json.RawMessage {
	if b == nil {
		return nil
	}
	return json.RawMessage(append([]byte(nil), b...))
}

// decodeAttributes decodes a JSONB attribute map keeping numbers exact
func decodeAttributes(b []byte) (map[string]any, error) {
	attrs := map[string]any{}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return attrs, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}
