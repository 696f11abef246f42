package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotify/models"
)

func TestDefaultWeeklyAvailability(t *testing.T) {
	avail := DefaultWeeklyAvailability("host-1")

	assert.Equal(t, "host-1", avail.HostID)
	require.Len(t, avail.Schedule, 7)
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		assert.True(t, avail.Schedule[day].IsWorking, day)
		assert.Equal(t, "09:00", avail.Schedule[day].Start, day)
		assert.Equal(t, "17:00", avail.Schedule[day].End, day)
	}
	assert.False(t, avail.Schedule["saturday"].IsWorking)
	assert.False(t, avail.Schedule["sunday"].IsWorking)
}

func TestWorkingWindow(t *testing.T) {
	avail := DefaultWeeklyAvailability("host-1")
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	start, end, ok := WorkingWindow(avail, monday, time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), end)
}

func TestWorkingWindowNonWorkingDay(t *testing.T) {
	avail := DefaultWeeklyAvailability("host-1")
	// 2026-03-07 is a Saturday, non-working in the default schedule.
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	_, _, ok := WorkingWindow(avail, saturday, time.UTC)
	assert.False(t, ok)
}

func TestWorkingWindowExceptionWins(t *testing.T) {
	avail := DefaultWeeklyAvailability("host-1")
	avail.Exceptions = []models.DateException{
		{
			// A working Saturday.
			Date:     "2026-03-07",
			Schedule: models.DaySchedule{IsWorking: true, Start: "10:00", End: "14:00"},
		},
		{
			// A Monday holiday.
			Date:     "2026-03-09",
			Schedule: models.DaySchedule{IsWorking: false},
		},
	}

	start, end, ok := WorkingWindow(avail, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 7, 14, 0, 0, 0, time.UTC), end)

	_, _, ok = WorkingWindow(avail, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.False(t, ok, "holiday exception overrides a working weekday")
}

func TestWorkingWindowFailsClosed(t *testing.T) {
	avail := DefaultWeeklyAvailability("host-1")
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// Working entry without parseable hours is treated as non-working.
	avail.Schedule["monday"] = models.DaySchedule{IsWorking: true}
	_, _, ok := WorkingWindow(avail, monday, time.UTC)
	assert.False(t, ok)

	// Missing weekday entry likewise.
	delete(avail.Schedule, "monday")
	_, _, ok = WorkingWindow(avail, monday, time.UTC)
	assert.False(t, ok)

	// Inverted hours likewise.
	avail.Schedule["monday"] = models.DaySchedule{IsWorking: true, Start: "17:00", End: "09:00"}
	_, _, ok = WorkingWindow(avail, monday, time.UTC)
	assert.False(t, ok)
}

func TestWorkingWindowTimezone(t *testing.T) {
	avail := DefaultWeeklyAvailability("host-1")
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start, end, ok := WorkingWindow(avail, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, loc), end)
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("09:00"))
	assert.True(t, ValidClock("23:59"))
	assert.True(t, ValidClock("00:00"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("09:60"))
	assert.False(t, ValidClock("9:00"))
	assert.False(t, ValidClock("0900"))
	assert.False(t, ValidClock(""))
}
