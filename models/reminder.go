package models

// ReminderPayload is the queued task body for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	// Start is the booking start the reminder was scheduled against; a
	// mismatch at fire time means the booking moved and this reminder
	// is stale.
	Start    string `json:"start"`
	FireDate string `json:"fireDate"`
}
