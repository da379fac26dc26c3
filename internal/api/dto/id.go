package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID accepts both JSON numbers and strings. Ids that are valid JSON integers
// are written back as numbers so the backend receives the type it issued;
// anything else, including digits with a leading zero, stays a string.
type ID string

func (id ID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if isJSONInteger(s) {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func isJSONInteger(s string) bool {
	if s == "" || strings.Trim(s, "0123456789") != "" {
		return false
	}
	return s == "0" || s[0] != '0'
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(n.String())
	}
	return nil
}
