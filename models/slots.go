package models

// SlotResponse is the wire shape of one bookable slot.
type SlotResponse struct {
	Start string `json:"start"` // ISO-8601 instant
	End   string `json:"end"`
}
