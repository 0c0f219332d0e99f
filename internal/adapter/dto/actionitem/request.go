package actionitem

import (
	"encoding/json"
	"time"
)

// NullableString distinguishes an explicit JSON null from an absent field.
// Absent leaves Set=false; "field": null gives Set=true with a nil value.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// NullableTime is NullableString's counterpart for RFC3339 timestamps.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// UpdateActionItemRequest represents a partial update. Only the supplied
// fields are applied; is_overdue is derived server-side and cannot be set.
type UpdateActionItemRequest struct {
	Description *string        `json:"description,omitempty" validate:"omitempty,min=1,max=1024"`
	Assignee    NullableString `json:"assignee"`
	Deadline    NullableTime   `json:"deadline"`
	Priority    *string        `json:"priority,omitempty"`
	Status      *string        `json:"status,omitempty"`
}
