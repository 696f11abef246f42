package scheduling

import (
	"fmt"

	"slotify/models"
)

// SlotTakenError signals an admission conflict: the proposed interval
// collides with an existing pending or confirmed booking. Retryable from
// the caller's point of view, never a system fault.
type SlotTakenError struct {
	Conflict models.TimeInterval
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot taken: conflicts with existing booking %s", e.Conflict)
}

// transitions is the booking status machine. Cancellation is additionally
// allowed from any non-terminal state as an escape hatch (see CanTransition).
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCancelled, models.BookingCompleted, models.BookingNoShow},
}

// Terminal reports whether a status admits no further transitions.
func Terminal(s models.BookingStatus) bool {
	switch s {
	case models.BookingCancelled, models.BookingCompleted, models.BookingNoShow:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another. Cancelling is always permitted from a non-terminal state.
func CanTransition(from, to models.BookingStatus) bool {
	if to == models.BookingCancelled {
		return !Terminal(from)
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InitialStatus assigns the status of a freshly admitted booking:
// pending when the template requires host confirmation, else confirmed.
func InitialStatus(requiresConfirmation bool) models.BookingStatus {
	if requiresConfirmation {
		return models.BookingPending
	}
	return models.BookingConfirmed
}

// Admit decides whether a proposed interval may be booked against the
// host's existing bookings. Only pending and confirmed bookings block,
// and they block on their raw intervals — buffers are a slot-generation
// concern, not a hard conflict rule. The decision is independent of the
// order of existing bookings.
func Admit(proposed models.TimeInterval, existing []models.Booking) error {
	for _, b := range existing {
		if !b.Blocks() {
			continue
		}
		if Overlaps(proposed, b.Interval) {
			return &SlotTakenError{Conflict: b.Interval}
		}
	}
	return nil
}

// AdmitExcluding is Admit with one booking removed from the existing set,
// used when validating a reschedule of that booking.
func AdmitExcluding(proposed models.TimeInterval, existing []models.Booking, excludeID string) error {
	filtered := make([]models.Booking, 0, len(existing))
	for _, b := range existing {
		if b.ID == excludeID {
			continue
		}
		filtered = append(filtered, b)
	}
	return Admit(proposed, filtered)
}
