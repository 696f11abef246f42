package scheduling

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"slotify/models"
)

// DefaultWeeklyAvailability builds the fallback schedule used when a host
// has never saved availability: Monday-Friday 09:00-17:00 working,
// weekends present but non-working.
func DefaultWeeklyAvailability(hostID string) models.WeeklyAvailability {
	now := time.Now().UTC()
	schedule := make(map[string]models.DaySchedule, len(models.Weekdays))
	for _, day := range models.Weekdays {
		switch day {
		case "saturday", "sunday":
			schedule[day] = models.DaySchedule{IsWorking: false, Start: "09:00", End: "13:00"}
		default:
			schedule[day] = models.DaySchedule{IsWorking: true, Start: "09:00", End: "17:00"}
		}
	}
	return models.WeeklyAvailability{
		ID:         uuid.New().String(),
		HostID:     hostID,
		Schedule:   schedule,
		Exceptions: []models.DateException{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// WeekdayName returns the lowercase schedule key for a date.
func WeekdayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// WorkingWindow resolves the bookable window for a calendar date in loc.
// Date exceptions win over the weekly schedule. A non-working day, a
// missing entry, or an entry without parseable hours yields ok=false —
// the model fails closed rather than assuming default hours.
func WorkingWindow(avail models.WeeklyAvailability, date time.Time, loc *time.Location) (start, end time.Time, ok bool) {
	day := date.In(loc)
	dateKey := day.Format("2006-01-02")

	sched, found := avail.Schedule[WeekdayName(day)]
	for _, exc := range avail.Exceptions {
		if exc.Date == dateKey {
			sched, found = exc.Schedule, true
			break
		}
	}
	if !found || !sched.IsWorking {
		return time.Time{}, time.Time{}, false
	}

	startH, startM, okStart := parseClock(sched.Start)
	endH, endM, okEnd := parseClock(sched.End)
	if !okStart || !okEnd {
		return time.Time{}, time.Time{}, false
	}

	start = time.Date(day.Year(), day.Month(), day.Day(), startH, startM, 0, 0, loc)
	end = time.Date(day.Year(), day.Month(), day.Day(), endH, endM, 0, 0, loc)
	if !start.Before(end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// ValidClock reports whether s is a valid "HH:MM" 24-hour time.
func ValidClock(s string) bool {
	_, _, ok := parseClock(s)
	return ok
}

func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
