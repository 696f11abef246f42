package handlers

import (
	"net/http"
	"time"

	"slotify/models"
	"slotify/services/booking"
	"slotify/utils"

	"github.com/gin-gonic/gin"
)

// CreateBooking reserves a slot for an invitee. Public endpoint.
func CreateBooking(c *gin.Context) {
	var input booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := BookingService.CreateBooking(&input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookings lists the authenticated host's bookings, with optional
// status and date-range filters.
func ListBookings(c *gin.Context) {
	q := booking.ListQuery{
		HostID: c.GetString("hostID"),
		Status: models.BookingStatus(c.Query("status")),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		q.From = t
	} else {
		q.From = time.Now().UTC().AddDate(0, 0, -30)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		q.To = t.AddDate(0, 0, 1)
	} else {
		q.To = time.Now().UTC().AddDate(0, 0, 90)
	}

	list, err := BookingService.ListByHost(q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// GetBooking returns one booking by ID or share code. The owning host sees
// it directly; anyone else needs the share code itself as the lookup key.
func GetBooking(c *gin.Context) {
	b, err := BookingService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatus applies a host-driven lifecycle transition.
func UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := BookingService.UpdateStatus(c.GetString("hostID"), c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RescheduleBooking moves a booking to a new start time. Authorized by
// host session or by the manage token from the confirmation email.
func RescheduleBooking(c *gin.Context) {
	var input struct {
		Start time.Time `json:"start"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	actor := actorFromRequest(c)
	b, err := BookingService.Reschedule(actor, c.Param("id"), input.Start)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking cancels a booking with an optional reason. Authorized by
// host session or manage token.
func CancelBooking(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	// The body is optional; a bare POST cancels without a reason.
	_ = c.ShouldBindJSON(&input)

	actor := actorFromRequest(c)
	b, err := BookingService.Cancel(actor, c.Param("id"), input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func actorFromRequest(c *gin.Context) booking.Actor {
	return booking.Actor{
		HostID:      c.GetString("hostID"),
		ManageToken: c.Query("token"),
	}
}

// HealthCheck reports the latest dependency health snapshot.
func HealthCheck(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
