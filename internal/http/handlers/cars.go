package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"carrental/internal/domain/models"
	"carrental/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/cars
func GetCars(c *gin.Context) {
	cars, err := repositories.CarRepository{}.ListAvailable()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load cars", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cars": cars})
}

// GET /api/cars/:id
func GetCarByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid car id", nil)
		return
	}
	car, err := repositories.CarRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "car": car})
}

type carPayload struct {
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	Year            int    `json:"year"`
	Category        string `json:"category"`
	FuelType        string `json:"fuel_type"`
	Transmission    string `json:"transmission"`
	SeatingCapacity int    `json:"seating_capacity"`
	Location        string `json:"location"`
	PricePerDay     int64  `json:"price_per_day"`
	Available       *bool  `json:"available"`
}

// POST /api/owner/cars
func CreateCar(c *gin.Context) {
	var req carPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Brand) == "" || strings.TrimSpace(req.Model) == "" || req.PricePerDay <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "brand, model and price_per_day are required", nil)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	car := models.Car{
		OwnerID:         ownerID(c),
		Brand:           strings.TrimSpace(req.Brand),
		Model:           strings.TrimSpace(req.Model),
		Year:            req.Year,
		Category:        strings.TrimSpace(req.Category),
		FuelType:        strings.TrimSpace(req.FuelType),
		Transmission:    strings.TrimSpace(req.Transmission),
		SeatingCapacity: req.SeatingCapacity,
		Location:        strings.TrimSpace(req.Location),
		PricePerDay:     req.PricePerDay,
		Available:       available,
	}

	id, err := (repositories.CarRepository{}).Insert(car)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save car", err)
		return
	}
	car.ID = id

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "car added", "car": car})
}

// GET /api/owner/cars
func GetOwnerCars(c *gin.Context) {
	cars, err := repositories.CarRepository{}.ListByOwner(ownerID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load cars", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cars": cars})
}

// DELETE /api/owner/cars/:id
func DeleteCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid car id", nil)
		return
	}
	if err := (repositories.CarRepository{}).Delete(id, ownerID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "car removed"})
}
