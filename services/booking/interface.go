package booking

import (
	"time"

	"slotify/models"
)

// CreateBookingRequest is the invitee-facing payload for reserving a slot.
// End is optional; when present it must equal start plus the template
// duration, so a client working from stale template data fails loudly
// instead of getting a booking of a different length.
type CreateBookingRequest struct {
	EventTypeID  string    `json:"eventTypeId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	InviteeEmail string    `json:"inviteeEmail"`
	InviteeName  string    `json:"inviteeName"`
	InviteePhone string    `json:"inviteePhone"`
	Notes        string    `json:"notes"`
	Location     string    `json:"location"`
	Timezone     string    `json:"timezone"`
}

// Actor identifies who is acting on a booking: an authenticated host, or
// an invitee holding a signed manage token from their confirmation email.
type Actor struct {
	HostID      string
	ManageToken string
}

// SlotQuery selects the day and template for slot generation.
type SlotQuery struct {
	EventTypeID string
	Date        string // YYYY-MM-DD, interpreted in Timezone
	Timezone    string // IANA name, defaults to UTC
}

// ListQuery filters a host's bookings.
type ListQuery struct {
	HostID string
	From   time.Time
	To     time.Time
	Status models.BookingStatus // optional
}

// BookingService orchestrates slot generation and the booking lifecycle.
type BookingService interface {
	// GetAvailableSlots lists the open slots for one day of one event type,
	// rendered in the query's timezone.
	GetAvailableSlots(q SlotQuery) ([]models.SlotResponse, error)
	// CreateBooking admits and stores a new booking. Admission runs under a
	// per-host lock so concurrent requests for the same slot cannot both win.
	CreateBooking(req *CreateBookingRequest) (*models.Booking, error)
	// Get returns a booking by ID or by its short shareable UID.
	Get(idOrUID string) (*models.Booking, error)
	// ListByHost returns the host's bookings in the query window.
	ListByHost(q ListQuery) ([]models.Booking, error)
	// UpdateStatus applies a host-driven status transition (confirm,
	// complete, no-show, cancel).
	UpdateStatus(hostID, bookingID string, to models.BookingStatus) (*models.Booking, error)
	// Reschedule moves a booking to a new start, re-admitting it against
	// the host's other bookings.
	Reschedule(actor Actor, bookingID string, newStart time.Time) (*models.Booking, error)
	// Cancel cancels a booking from any non-terminal state.
	Cancel(actor Actor, bookingID, reason string) (*models.Booking, error)
}
