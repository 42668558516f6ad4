package handlers

import (
	"net/http"
	"strconv"

	"carrental/internal/domain/models"
	"carrental/internal/http/middleware"
	"carrental/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		RequestID:     middleware.GetRequestID(c),
		DriverDayRate: appEnv.DriverDayRate,
	}
}

// POST /api/bookings/create
func CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := bookingService(c).CreateBooking(req, middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "booking created",
		"booking": booking,
	})
}

// GET /api/bookings/my
func GetMyBookings(c *gin.Context) {
	bookings, err := bookingService(c).ListForUser(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// GET /api/bookings/:id/receipt
func GetBookingReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid booking id", nil)
		return
	}

	svc := services.ReceiptService{
		RequestID:     middleware.GetRequestID(c),
		Currency:      appEnv.Currency,
		DriverDayRate: appEnv.DriverDayRate,
	}
	pdf, filename, err := svc.GenerateReceipt(id, middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
