// Package options implements the persisted option stores.
package options

import (
	"encoding/json"
	"strings"
)

// decodeString reads a stored JSON value as a string.
func decodeString(raw []byte) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// decodeStrings reads a stored JSON value as a list.
// A single string is accepted as a one-element list; a comma separated string is split.
func decodeStrings(raw []byte) ([]string, bool) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, true
	}
	s, ok := decodeString(raw)
	if !ok {
		return nil, false
	}
	if s == "" {
		return nil, true
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out, true
}
