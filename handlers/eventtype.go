package handlers

import (
	"net/http"

	"slotify/models"
	"slotify/services/eventtype"

	"github.com/gin-gonic/gin"
)

var EventTypeService eventtype.EventTypeService

// CreateEventType creates a booking template for the authenticated host.
func CreateEventType(c *gin.Context) {
	hostID := c.GetString("hostID")
	var input models.EventType
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	et, err := EventTypeService.Create(hostID, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, et)
}

// ListEventTypes lists the authenticated host's templates.
func ListEventTypes(c *gin.Context) {
	hostID := c.GetString("hostID")
	list, err := EventTypeService.ListByHost(hostID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"eventTypes": list})
}

// GetEventType returns one template. Public: the booking page loads it.
func GetEventType(c *gin.Context) {
	et, err := EventTypeService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, et)
}

// UpdateEventType replaces a template owned by the authenticated host.
func UpdateEventType(c *gin.Context) {
	hostID := c.GetString("hostID")
	var input models.EventType
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	et, err := EventTypeService.Update(hostID, c.Param("id"), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, et)
}

// DeleteEventType removes a template owned by the authenticated host.
func DeleteEventType(c *gin.Context) {
	hostID := c.GetString("hostID")
	if err := EventTypeService.Delete(hostID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
