package models

import "time"

// AllowedDurations are the bookable event lengths in minutes.
var AllowedDurations = []int{15, 30, 45, 60, 90, 120}

// EventType is a host-owned booking template. Invitees read it; only the
// owning host mutates it.
type EventType struct {
	ID                   string    `bson:"id" json:"id"`
	HostID               string    `bson:"host_id" json:"hostId"`
	Title                string    `bson:"title" json:"title"`
	Slug                 string    `bson:"slug" json:"slug"`
	Description          string    `bson:"description" json:"description"`
	Color                string    `bson:"color" json:"color"`
	Duration             int       `bson:"duration" json:"duration"` // minutes, from AllowedDurations
	BufferBefore         int       `bson:"buffer_before" json:"bufferBefore"`
	BufferAfter          int       `bson:"buffer_after" json:"bufferAfter"`
	MinNoticeMinutes     int       `bson:"min_notice_minutes" json:"minNoticeMinutes"`
	MaxBookingDays       int       `bson:"max_booking_days" json:"maxBookingDays"`
	RequiresConfirmation bool      `bson:"requires_confirmation" json:"requiresConfirmation"`
	IsActive             bool      `bson:"is_active" json:"isActive"`
	CreatedAt            time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsAllowedDuration reports whether minutes is a bookable event length.
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}
