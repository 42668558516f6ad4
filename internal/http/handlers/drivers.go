package handlers

import (
	"net/http"

	"carrental/internal/draft"

	"github.com/gin-gonic/gin"
)

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "drivers": draft.Roster()})
}

// GET /api/drivers/assign
//
// Picks one roster driver at random for the current booking attempt. The
// client echoes the contact fields back in the creation request so the
// assignment ends up on the persisted booking.
func AssignDriver(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "driver": draft.PickDriver()})
}
