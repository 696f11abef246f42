package availability

import (
	"fmt"
	"time"

	availabilityRepo "slotify/database/repository/availability"
	"slotify/models"
	"slotify/services/booking"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityService manages a host's weekly working hours and date
// exceptions.
type AvailabilityService interface {
	// Get returns the host's stored availability, falling back to the
	// default Monday-to-Friday schedule when nothing has been saved yet.
	// The fallback is not persisted.
	Get(hostID string) (*models.WeeklyAvailability, error)
	// Update validates and stores the host's availability.
	Update(hostID string, avail *models.WeeklyAvailability) (*models.WeeklyAvailability, error)
}

type DefaultAvailabilityService struct {
	Repo availabilityRepo.AvailabilityRepository
}

func (s *DefaultAvailabilityService) Get(hostID string) (*models.WeeklyAvailability, error) {
	stored, err := s.Repo.GetByHostID(hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if stored == nil {
		def := scheduling.DefaultWeeklyAvailability(hostID)
		return &def, nil
	}
	return stored, nil
}

func (s *DefaultAvailabilityService) Update(hostID string, avail *models.WeeklyAvailability) (*models.WeeklyAvailability, error) {
	if err := validateSchedule(avail.Schedule); err != nil {
		return nil, err
	}
	for _, exc := range avail.Exceptions {
		if _, err := time.Parse("2006-01-02", exc.Date); err != nil {
			return nil, booking.NewValidationError("exceptions", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", exc.Date))
		}
		if exc.Schedule.IsWorking {
			if err := validateDay(exc.Date, exc.Schedule); err != nil {
				return nil, err
			}
		}
	}

	existing, err := s.Repo.GetByHostID(hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}

	now := time.Now().UTC()
	avail.HostID = hostID
	avail.UpdatedAt = now
	if existing != nil {
		avail.ID = existing.ID
		avail.CreatedAt = existing.CreatedAt
	} else {
		avail.ID = uuid.New().String()
		avail.CreatedAt = now
	}

	if err := s.Repo.Upsert(avail); err != nil {
		return nil, fmt.Errorf("failed to store availability: %w", err)
	}
	utils.GetLogger().Info("availability updated", zap.String("hostID", hostID))
	return avail, nil
}

func validateSchedule(schedule map[string]models.DaySchedule) error {
	if len(schedule) == 0 {
		return booking.NewValidationError("schedule", "schedule must not be empty")
	}
	valid := make(map[string]bool, len(models.Weekdays))
	for _, d := range models.Weekdays {
		valid[d] = true
	}
	for day, ds := range schedule {
		if !valid[day] {
			return booking.NewValidationError("schedule", fmt.Sprintf("unknown weekday %q", day))
		}
		if !ds.IsWorking {
			continue
		}
		if err := validateDay(day, ds); err != nil {
			return err
		}
	}
	return nil
}

func validateDay(key string, ds models.DaySchedule) error {
	if !scheduling.ValidClock(ds.Start) || !scheduling.ValidClock(ds.End) {
		return booking.NewValidationError("schedule", fmt.Sprintf("%s: hours must be in HH:MM format", key))
	}
	if ds.Start >= ds.End {
		return booking.NewValidationError("schedule", fmt.Sprintf("%s: start must be before end", key))
	}
	return nil
}
