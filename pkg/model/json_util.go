package model

import (
	"encoding/json"
	"fmt"
)

// marshalQuoted is a tiny helper shared by the hand-written MarshalJSON
// methods in this package (Color, Source, Destination) that serialize as a
// bare JSON string.
func marshalQuoted(s string) ([]byte, error) {
	return json.Marshal(s)
}

// unmarshalQuoted is the inverse of marshalQuoted.
func unmarshalQuoted(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("model: expected JSON string: %w", err)
	}
	return s, nil
}
