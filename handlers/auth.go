package handlers

import (
	"net/http"

	"slotify/services/host"

	"github.com/gin-gonic/gin"
)

var HostService host.HostService

// RegisterHost creates a host account and returns a session token.
func RegisterHost(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	h, token, err := HostService.Register(input.Email, input.Name, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"host": h, "token": token})
}

// LoginHost verifies credentials and returns a session token.
func LoginHost(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	h, token, err := HostService.Login(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"host": h, "token": token})
}
