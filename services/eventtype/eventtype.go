package eventtype

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	eventTypeRepo "slotify/database/repository/eventtype"
	"slotify/models"
	"slotify/services/booking"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventTypeService manages a host's booking templates.
type EventTypeService interface {
	Create(hostID string, et *models.EventType) (*models.EventType, error)
	// Get returns the template. Access is public: invitees look templates up
	// when booking.
	Get(id string) (*models.EventType, error)
	ListByHost(hostID string) ([]models.EventType, error)
	Update(hostID, id string, et *models.EventType) (*models.EventType, error)
	Delete(hostID, id string) error
}

type DefaultEventTypeService struct {
	Repo eventTypeRepo.EventTypeRepository
}

const (
	defaultMinNoticeMinutes = 60
	defaultMaxBookingDays   = 60
	defaultColor            = "#0069ff"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func (s *DefaultEventTypeService) Create(hostID string, et *models.EventType) (*models.EventType, error) {
	if err := validateTemplate(et); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	et.ID = uuid.New().String()
	et.HostID = hostID
	if et.Slug == "" {
		et.Slug = Slugify(et.Title)
	}
	if et.Color == "" {
		et.Color = defaultColor
	}
	if et.MinNoticeMinutes == 0 {
		et.MinNoticeMinutes = defaultMinNoticeMinutes
	}
	if et.MaxBookingDays == 0 {
		et.MaxBookingDays = defaultMaxBookingDays
	}
	et.IsActive = true
	et.CreatedAt = now
	et.UpdatedAt = now

	if err := s.Repo.Create(et); err != nil {
		return nil, fmt.Errorf("failed to create event type: %w", err)
	}
	utils.GetLogger().Info("event type created",
		zap.String("hostID", hostID), zap.String("eventTypeID", et.ID), zap.String("slug", et.Slug))
	return et, nil
}

func (s *DefaultEventTypeService) Get(id string) (*models.EventType, error) {
	et, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event type: %w", err)
	}
	if et == nil {
		return nil, booking.NewNotFoundError("event type", id)
	}
	return et, nil
}

func (s *DefaultEventTypeService) ListByHost(hostID string) ([]models.EventType, error) {
	list, err := s.Repo.GetByHostID(hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event types: %w", err)
	}
	return list, nil
}

func (s *DefaultEventTypeService) Update(hostID, id string, in *models.EventType) (*models.EventType, error) {
	existing, err := s.owned(hostID, id)
	if err != nil {
		return nil, err
	}
	if err := validateTemplate(in); err != nil {
		return nil, err
	}

	in.ID = existing.ID
	in.HostID = existing.HostID
	in.CreatedAt = existing.CreatedAt
	in.UpdatedAt = time.Now().UTC()
	if in.Slug == "" {
		in.Slug = existing.Slug
	}
	if in.Color == "" {
		in.Color = existing.Color
	}
	if in.MinNoticeMinutes == 0 {
		in.MinNoticeMinutes = existing.MinNoticeMinutes
	}
	if in.MaxBookingDays == 0 {
		in.MaxBookingDays = existing.MaxBookingDays
	}
	// Editing a template never deactivates it; deletion is the only way
	// to take one off the booking page.
	in.IsActive = existing.IsActive

	if err := s.Repo.Update(in); err != nil {
		return nil, fmt.Errorf("failed to update event type: %w", err)
	}
	return in, nil
}

func (s *DefaultEventTypeService) Delete(hostID, id string) error {
	if _, err := s.owned(hostID, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event type: %w", err)
	}
	utils.GetLogger().Info("event type deleted", zap.String("hostID", hostID), zap.String("eventTypeID", id))
	return nil
}

func (s *DefaultEventTypeService) owned(hostID, id string) (*models.EventType, error) {
	et, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event type: %w", err)
	}
	if et == nil {
		return nil, booking.NewNotFoundError("event type", id)
	}
	if et.HostID != hostID {
		return nil, booking.NewForbiddenError("event type belongs to another host")
	}
	return et, nil
}

func validateTemplate(et *models.EventType) error {
	if strings.TrimSpace(et.Title) == "" {
		return booking.NewValidationError("title", "title is required")
	}
	if !models.IsAllowedDuration(et.Duration) {
		return booking.NewValidationError("duration",
			fmt.Sprintf("duration must be one of %v minutes", models.AllowedDurations))
	}
	if et.BufferBefore < 0 || et.BufferAfter < 0 {
		return booking.NewValidationError("buffers", "buffers must not be negative")
	}
	if et.MinNoticeMinutes < 0 {
		return booking.NewValidationError("minNoticeMinutes", "minimum notice must not be negative")
	}
	if et.MaxBookingDays < 0 {
		return booking.NewValidationError("maxBookingDays", "booking horizon must not be negative")
	}
	return nil
}

// Slugify turns a title into a URL-safe identifier.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "event"
	}
	return slug
}
