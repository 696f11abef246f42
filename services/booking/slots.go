package booking

import (
	"fmt"
	"time"

	"slotify/models"
	"slotify/services/scheduling"
)

func (s *DefaultBookingService) GetAvailableSlots(q SlotQuery) ([]models.SlotResponse, error) {
	et, err := s.EventTypes.GetByID(q.EventTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event type: %w", err)
	}
	if et == nil || !et.IsActive {
		return nil, NewNotFoundError("event type", q.EventTypeID)
	}

	tz := q.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", tz))
	}

	date, err := time.ParseInLocation("2006-01-02", q.Date, loc)
	if err != nil {
		return nil, NewValidationError("date", "expected YYYY-MM-DD")
	}

	now := time.Now()
	if date.After(now.AddDate(0, 0, et.MaxBookingDays)) {
		return []models.SlotResponse{}, nil
	}

	slots, err := s.generateForDay(et, date, loc)
	if err != nil {
		return nil, err
	}

	// Slots starting before the notice cutoff are not offered.
	cutoff := now.Add(time.Duration(et.MinNoticeMinutes) * time.Minute)
	out := make([]models.SlotResponse, 0, len(slots))
	for _, iv := range slots {
		if iv.Start.Before(cutoff) {
			continue
		}
		out = append(out, models.SlotResponse{
			Start: iv.Start.In(loc).Format(time.RFC3339),
			End:   iv.End.In(loc).Format(time.RFC3339),
		})
	}
	return out, nil
}

// generateForDay loads the host's availability and bookings for one calendar
// day and runs the slot generator.
func (s *DefaultBookingService) generateForDay(et *models.EventType, dayStart time.Time, loc *time.Location) ([]models.TimeInterval, error) {
	avail, err := s.hostAvailability(et.HostID)
	if err != nil {
		return nil, err
	}
	existing, err := s.Bookings.FindBlockingForDay(et.HostID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing bookings: %w", err)
	}
	req := scheduling.SlotRequest{
		Duration:     et.Duration,
		BufferBefore: et.BufferBefore,
		BufferAfter:  et.BufferAfter,
	}
	return scheduling.GenerateSlots(*avail, dayStart, loc, req, existing), nil
}

func (s *DefaultBookingService) hostAvailability(hostID string) (*models.WeeklyAvailability, error) {
	avail, err := s.Availability.GetByHostID(hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if avail == nil {
		def := scheduling.DefaultWeeklyAvailability(hostID)
		return &def, nil
	}
	return avail, nil
}

// checkOffered verifies the proposed interval is one the generator offers
// for its day, excluding excludeID from the blocking set when rescheduling.
func (s *DefaultBookingService) checkOffered(avail *models.WeeklyAvailability, et *models.EventType, proposed models.TimeInterval, loc *time.Location) error {
	return s.checkOfferedExcluding(avail, et, proposed, loc, "")
}

func (s *DefaultBookingService) checkOfferedExcluding(avail *models.WeeklyAvailability, et *models.EventType, proposed models.TimeInterval, loc *time.Location, excludeID string) error {
	local := proposed.Start.In(loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	existing, err := s.Bookings.FindBlockingForDay(et.HostID, dayStart)
	if err != nil {
		return fmt.Errorf("failed to load existing bookings: %w", err)
	}
	if excludeID != "" {
		filtered := existing[:0]
		for _, b := range existing {
			if b.ID != excludeID {
				filtered = append(filtered, b)
			}
		}
		existing = filtered
	}

	req := scheduling.SlotRequest{
		Duration:     et.Duration,
		BufferBefore: et.BufferBefore,
		BufferAfter:  et.BufferAfter,
	}
	for _, iv := range scheduling.GenerateSlots(*avail, dayStart, loc, req, existing) {
		if iv.Start.Equal(proposed.Start) && iv.End.Equal(proposed.End) {
			return nil
		}
	}
	return NewValidationError("start", "requested time is not an available slot")
}
