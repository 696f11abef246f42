package bookingRepo

import (
	"time"

	"slotify/models"
)

// BookingRepository manages booking documents. Bookings are inserted and
// updated, never deleted: cancellation is a status change.
type BookingRepository interface {
	Create(b *models.Booking) error
	// GetByID returns the booking, or nil when it does not exist.
	GetByID(id string) (*models.Booking, error)
	// GetByUID returns the booking with the given share code, or nil.
	GetByUID(uid string) (*models.Booking, error)
	Update(b *models.Booking) error
	// FindByHost returns the host's bookings whose start instant falls in
	// [from, to), optionally restricted to the given statuses.
	FindByHost(hostID string, from, to time.Time, statuses []models.BookingStatus) ([]models.Booking, error)
	// FindBlockingForDay returns the pending and confirmed bookings whose
	// interval overlaps the calendar day starting at dayStart (local
	// midnight in the host's zone), including ones that begin earlier and
	// spill into it.
	FindBlockingForDay(hostID string, dayStart time.Time) ([]models.Booking, error)
}
