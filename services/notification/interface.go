package notification

import "slotify/models"

// Sender delivers a single message. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(to, subject, body string) error
}

// NotificationService sends booking-lifecycle emails. All methods are
// fire-and-forget at the call site: failures are logged, never propagated
// into the booking flow.
type NotificationService interface {
	SendBookingCreated(b *models.Booking, et *models.EventType, hostEmail, hostName string)
	SendStatusChanged(b *models.Booking, et *models.EventType, hostEmail string)
	SendRescheduled(b *models.Booking, et *models.EventType, hostEmail string)
	SendCancelled(b *models.Booking, et *models.EventType, hostEmail string)
	SendReminder(to, subject, body string) error
}
