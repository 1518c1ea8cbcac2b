package dto

import "encoding/json"

// NullableInt64 distinguishes an absent JSON field from an explicit null.
// Updating a category's parent needs all three states: untouched,
// promoted to root (null), moved under a concrete ID.
type NullableInt64 struct {
	Present bool
	Value   *int64
}

// UnmarshalJSON implements json.Unmarshaler. It is only called when the
// field is present in the payload, which is what flips Present.
func (n *NullableInt64) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// MarshalJSON implements json.Marshaler
func (n NullableInt64) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
