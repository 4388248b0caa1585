package helper

import (
	"encoding/json"

	"github.com/google/uuid"
)

// NullableString distinguishes "key not sent" from "key sent as null"
// in partial-update payloads. Present is only set when the key appeared
// in the document; Valid is false for an explicit null.
type NullableString struct {
	Present bool
	Valid   bool
	Value   string
}

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		n.Valid = false
		n.Value = ""
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Set marks the value as present with an explicit value. An empty
// string counts as "clear", same as null.
func (n *NullableString) Set(v string) {
	n.Present = true
	n.Valid = v != ""
	n.Value = v
}

// SetNull marks the value as present-but-null.
func (n *NullableString) SetNull() {
	n.Present = true
	n.Valid = false
	n.Value = ""
}

// NullableUUID is the same tri-state for nullable references.
type NullableUUID struct {
	Present bool
	Valid   bool
	Value   uuid.UUID
}

func (n *NullableUUID) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		n.Valid = false
		n.Value = uuid.Nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	n.Value = id
	n.Valid = true
	return nil
}
