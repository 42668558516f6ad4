package handlers

import (
	"net/http"
	"strconv"

	"carrental/internal/domain/models"
	"carrental/internal/http/middleware"
	"carrental/internal/repositories"
	"carrental/internal/services"

	"github.com/gin-gonic/gin"
)

func ownerID(c *gin.Context) int64 {
	return middleware.GetUserID(c)
}

// GET /api/owner/dashboard
func GetDashboard(c *gin.Context) {
	summary, err := services.DashboardService{}.ComputeSummary(ownerID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "dashboard": summary})
}

// GET /api/owner/bookings
func GetOwnerBookings(c *gin.Context) {
	bookings, err := bookingService(c).ListForOwner(ownerID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

type statusPayload struct {
	Status string `json:"status"`
}

// PUT /api/owner/bookings/:id/status
func UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid booking id", nil)
		return
	}

	var req statusPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := bookingService(c).UpdateStatus(id, ownerID(c), req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "booking status updated"})
}

// POST /api/owner/change-role
func ChangeRoleToOwner(c *gin.Context) {
	users := repositories.UserRepository{}
	if err := users.UpdateRole(middleware.GetUserID(c), models.RoleOwner); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "you can now list cars"})
}
