package hostRepo

import "slotify/models"

// HostRepository manages host accounts.
type HostRepository interface {
	Create(h *models.Host) error
	// GetByID returns the host, or nil when it does not exist.
	GetByID(id string) (*models.Host, error)
	// GetByEmail returns the host, or nil when it does not exist.
	GetByEmail(email string) (*models.Host, error)
}
