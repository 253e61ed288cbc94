package outline

import (
	"encoding/json"
	"fmt"
)

// Encode renders the outline document as deterministic, pretty-printed
// JSON with a trailing newline. Field order is fixed by the struct
// definitions, so decoding and re-encoding a document is byte-identical.
func Encode(f *File) ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode outline: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a document produced by Encode.
func Decode(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode outline: %w", err)
	}
	return &f, nil
}
