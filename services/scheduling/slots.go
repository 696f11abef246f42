package scheduling

import (
	"time"

	"slotify/models"
)

// SlotStep is the granularity at which slot-start candidates are probed.
// Candidates advance by this step, not by the event duration, so slots can
// start at fine-grained offsets even when duration exceeds the step.
const SlotStep = 15 * time.Minute

// SlotRequest carries the template parameters the generator needs.
type SlotRequest struct {
	Duration     int // minutes
	BufferBefore int // minutes of host decompression before existing bookings
	BufferAfter  int // minutes after existing bookings
}

// GenerateSlots enumerates the bookable intervals for one calendar date.
//
// The result is an ascending sequence of duration-length intervals inside
// the day's working window, skipping any candidate that overlaps an
// existing blocking booking once that booking is expanded by the buffers.
// Buffers apply only to existing bookings, never to the candidate itself.
// A non-working day yields an empty sequence, not an error. Pure function:
// identical inputs always yield identical output.
//
// Notice and horizon limits (minNotice, maxBookingDays) are admission
// filters owned by the caller, not the generator.
func GenerateSlots(
	avail models.WeeklyAvailability,
	date time.Time,
	loc *time.Location,
	req SlotRequest,
	existing []models.Booking,
) []models.TimeInterval {
	windowStart, windowEnd, ok := WorkingWindow(avail, date, loc)
	if !ok || req.Duration <= 0 {
		return nil
	}

	busy := make([]models.TimeInterval, 0, len(existing))
	for _, b := range existing {
		if !b.Blocks() {
			continue
		}
		busy = append(busy, Expand(b.Interval, req.BufferBefore, req.BufferAfter))
	}

	duration := time.Duration(req.Duration) * time.Minute
	var slots []models.TimeInterval
	for slotStart := windowStart; ; slotStart = slotStart.Add(SlotStep) {
		slotEnd := slotStart.Add(duration)
		if slotEnd.After(windowEnd) {
			break
		}
		candidate := models.TimeInterval{Start: slotStart, End: slotEnd}
		if !overlapsAny(candidate, busy) {
			slots = append(slots, candidate)
		}
	}
	return slots
}

func overlapsAny(candidate models.TimeInterval, busy []models.TimeInterval) bool {
	for _, iv := range busy {
		if Overlaps(candidate, iv) {
			return true
		}
	}
	return false
}
