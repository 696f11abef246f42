package handlers

import (
	"net/http"

	"slotify/models"
	"slotify/services/availability"
	"slotify/services/booking"

	"github.com/gin-gonic/gin"
)

var AvailabilityService availability.AvailabilityService
var BookingService booking.BookingService

// GetAvailability returns the authenticated host's weekly schedule,
// falling back to the default when none is stored.
func GetAvailability(c *gin.Context) {
	hostID := c.GetString("hostID")
	avail, err := AvailabilityService.Get(hostID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// UpdateAvailability replaces the authenticated host's weekly schedule.
func UpdateAvailability(c *gin.Context) {
	hostID := c.GetString("hostID")
	var input models.WeeklyAvailability
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	avail, err := AvailabilityService.Update(hostID, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// GetAvailableSlots lists the open slots for a day of an event type.
// Public: invitees call it from the booking page.
func GetAvailableSlots(c *gin.Context) {
	q := booking.SlotQuery{
		EventTypeID: c.Query("eventTypeId"),
		Date:        c.Query("date"),
		Timezone:    c.Query("timezone"),
	}
	if q.EventTypeID == "" || q.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventTypeId and date are required"})
		return
	}

	slots, err := BookingService.GetAvailableSlots(q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
