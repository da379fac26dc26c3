package domain

import "strings"

// ID is an opaque identifier assigned by the remote store.
// The zero value means the entity has not been saved yet.
type ID string

// IsSet reports whether the id is present and non-blank.
func (id ID) IsSet() bool { return strings.TrimSpace(string(id)) != "" }

func (id ID) String() string { return string(id) }
