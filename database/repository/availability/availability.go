package availabilityRepo

import "slotify/models"

// AvailabilityRepository manages the per-host weekly availability document.
type AvailabilityRepository interface {
	// GetByHostID returns the host's availability, or nil when none is stored.
	GetByHostID(hostID string) (*models.WeeklyAvailability, error)
	// Upsert creates or replaces the host's singleton availability document.
	Upsert(avail *models.WeeklyAvailability) error
}
