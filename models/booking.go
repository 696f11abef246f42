package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no-show"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingNoShow:
		return true
	}
	return false
}

// Booking is a reserved interval against a host's availability.
// Bookings are never deleted; cancellation is a status transition.
type Booking struct {
	ID                 string        `bson:"id" json:"id"`
	UID                string        `bson:"uid" json:"uid"` // short shareable code
	EventTypeID        string        `bson:"event_type_id" json:"eventTypeId"`
	HostID             string        `bson:"host_id" json:"hostId"`
	Interval           TimeInterval  `bson:"interval" json:"interval"`
	InviteeEmail       string        `bson:"invitee_email" json:"inviteeEmail"`
	InviteeName        string        `bson:"invitee_name" json:"inviteeName"`
	InviteePhone       string        `bson:"invitee_phone,omitempty" json:"inviteePhone,omitempty"`
	Notes              string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Location           string        `bson:"location" json:"location"`
	Timezone           string        `bson:"timezone" json:"timezone"`
	Status             BookingStatus `bson:"status" json:"status"`
	CancellationReason string        `bson:"cancellation_reason,omitempty" json:"cancellationReason,omitempty"`
	RescheduleCount    int           `bson:"reschedule_count" json:"rescheduleCount"`
	CreatedAt          time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Blocks reports whether the booking's status still occupies its interval.
// Cancelled, completed and no-show bookings never block new reservations.
func (b Booking) Blocks() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
