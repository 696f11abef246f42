package handlers

import (
	"errors"
	"net/http"

	"slotify/services/booking"
	"slotify/services/host"
	"slotify/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to HTTP statuses. Unknown errors are
// logged and returned as 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var (
		valErr      *booking.ValidationError
		slotErr     *scheduling.SlotTakenError
		busyErr     *booking.SlotTakenBusyError
		notFoundErr *booking.NotFoundError
		forbErr     *booking.ForbiddenError
		authErr     *host.AuthError
	)
	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Error(), "field": valErr.Field})
	case errors.As(err, &slotErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot is no longer available"})
	case errors.As(err, &busyErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": busyErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &forbErr):
		c.JSON(http.StatusForbidden, gin.H{"error": forbErr.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Error()})
	default:
		getLogger(c).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
