package eventTypeRepo

import "slotify/models"

// EventTypeRepository manages host-owned booking templates.
type EventTypeRepository interface {
	Create(et *models.EventType) error
	// GetByID returns the template, or nil when it does not exist.
	GetByID(id string) (*models.EventType, error)
	GetByHostID(hostID string) ([]models.EventType, error)
	Update(et *models.EventType) error
	Delete(id string) error
}
