package services

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	intconfig "carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/draft"
	"carrental/internal/repositories"
	"carrental/internal/utils"

	"github.com/google/uuid"
)

// BookingService owns the server-side booking lifecycle: creation with
// price recomputation, owner/renter listings, and status transitions.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	CarRepo     repositories.CarRepository
	DB          *sql.DB
	RequestID   string

	// Flat per-day driver fee; falls back to the draft package default.
	DriverDayRate int64
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) cars() repositories.CarRepository {
	if s.CarRepo.DB != nil {
		return s.CarRepo
	}
	return repositories.CarRepository{DB: s.db()}
}

func (s BookingService) driverDayRate() int64 {
	if s.DriverDayRate > 0 {
		return s.DriverDayRate
	}
	return draft.DefaultDriverDayRate
}

// CreateBooking validates the finalized draft request, resolves the car to
// derive its owner and trusted daily rate, rejects overlapping reservations,
// recomputes the price server-side, and persists a pending booking.
func (s BookingService) CreateBooking(req models.CreateBookingRequest, userID int64) (models.Booking, error) {
	var out models.Booking

	if userID <= 0 {
		return out, domain.UnauthorizedError{Msg: "not authorized"}
	}
	if req.CarID <= 0 {
		return out, domain.ValidationError{Field: "car_id", Msg: "is required"}
	}

	pickup, err := utils.ParseDate(req.PickupDate)
	if err != nil {
		return out, domain.ValidationError{Field: "pickup_date", Msg: "invalid date", Err: err}
	}
	ret, err := utils.ParseDate(req.ReturnDate)
	if err != nil {
		return out, domain.ValidationError{Field: "return_date", Msg: "invalid date", Err: err}
	}
	if !ret.After(pickup) {
		return out, domain.ValidationError{Field: "return_date", Msg: "return date must be after pickup date"}
	}

	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"phone", req.Phone},
		{"address", req.Address},
		{"national_id_number", req.NationalID},
		{"license_number", req.LicenseNumber},
	} {
		if strings.TrimSpace(f.value) == "" {
			return out, domain.ValidationError{Field: f.name, Msg: "is required"}
		}
	}

	method := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if method == "" {
		method = models.PaymentCash
	}
	if !models.ValidPaymentMethod(method) {
		return out, domain.ValidationError{Field: "payment_method", Msg: "unknown payment method"}
	}
	switch method {
	case models.PaymentCard:
		if strings.TrimSpace(req.CardName) == "" || strings.TrimSpace(req.CardNumber) == "" || strings.TrimSpace(req.CardExpiry) == "" {
			return out, domain.ValidationError{Field: "card", Msg: "incomplete card details"}
		}
	case models.PaymentNetBanking:
		if strings.TrimSpace(req.BankCode) == "" {
			return out, domain.ValidationError{Field: "bank_code", Msg: "is required"}
		}
	}
	if req.DriverNeeded && (strings.TrimSpace(req.DriverPhone) == "" || strings.TrimSpace(req.DriverAddress) == "") {
		return out, domain.ValidationError{Field: "driver_contact", Msg: "is required when a driver is requested"}
	}

	car, err := s.cars().GetByID(req.CarID)
	if err != nil {
		return out, err
	}

	overlap, err := s.bookings().HasOverlap(car.ID, utils.FormatDate(pickup), utils.FormatDate(ret))
	if err != nil {
		return out, domain.InternalError{Msg: "failed to check availability", Err: err}
	}
	if overlap {
		return out, domain.ConflictError{Resource: "booking", Msg: "car already booked for the selected dates"}
	}

	// Never trust a client total; the quote is rebuilt from the stored rate.
	quote := draft.Compute(pickup, ret, car.PricePerDay, req.DriverNeeded, s.driverDayRate())

	b := models.Booking{
		BookingCode:   uuid.NewString(),
		CarID:         car.ID,
		UserID:        userID,
		OwnerID:       car.OwnerID,
		PickupDate:    utils.FormatDate(pickup),
		ReturnDate:    utils.FormatDate(ret),
		RenterName:    utils.NormalizeSpace(req.Name),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       utils.NormalizeSpace(req.Address),
		NationalID:    strings.TrimSpace(req.NationalID),
		LicenseNumber: strings.TrimSpace(req.LicenseNumber),
		DriverNeeded:  req.DriverNeeded,
		PaymentMethod: method,
		Status:        models.StatusPending,
		Price:         quote.Total,
	}
	if req.DriverNeeded {
		b.DriverName = strings.TrimSpace(req.DriverName)
		b.DriverPhone = strings.TrimSpace(req.DriverPhone)
		b.DriverAddress = strings.TrimSpace(req.DriverAddress)
	}
	switch method {
	case models.PaymentCard:
		b.CardName = strings.TrimSpace(req.CardName)
		b.CardNumber = strings.TrimSpace(req.CardNumber)
		b.CardExpiry = strings.TrimSpace(req.CardExpiry)
	case models.PaymentNetBanking:
		b.BankCode = strings.TrimSpace(req.BankCode)
	}

	id, err := s.bookings().Insert(b)
	if err != nil {
		return out, domain.InternalError{Msg: "failed to save booking", Err: err}
	}
	b.ID = id
	b.CarBrand = car.Brand
	b.CarModel = car.Model
	b.CreatedAt = utils.FormatDateTime(time.Now())

	utils.LogEvent(s.RequestID, "booking", "create",
		"booking_id="+strconv.FormatInt(id, 10)+" car_id="+strconv.FormatInt(car.ID, 10))
	return b, nil
}

// ListForOwner returns bookings against the owner's cars, newest first.
func (s BookingService) ListForOwner(ownerID int64) ([]models.Booking, error) {
	if ownerID <= 0 {
		return nil, domain.ValidationError{Field: "owner_id", Msg: "invalid id"}
	}
	return s.bookings().ListByOwner(ownerID)
}

// ListRecentForOwner returns the owner's newest bookings, bounded by limit.
func (s BookingService) ListRecentForOwner(ownerID int64, limit int) ([]models.Booking, error) {
	if ownerID <= 0 {
		return nil, domain.ValidationError{Field: "owner_id", Msg: "invalid id"}
	}
	return s.bookings().ListRecentByOwner(ownerID, limit)
}

// ListForUser returns the renter's own bookings, newest first.
func (s BookingService) ListForUser(userID int64) ([]models.Booking, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}
	return s.bookings().ListByUser(userID)
}

// UpdateStatus applies an owner-side status transition.
func (s BookingService) UpdateStatus(bookingID, ownerID int64, status string) error {
	if bookingID <= 0 {
		return domain.ValidationError{Field: "booking_id", Msg: "invalid id"}
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !models.ValidStatus(status) {
		return domain.ValidationError{Field: "status", Msg: "unknown status"}
	}
	if err := s.bookings().UpdateStatus(bookingID, ownerID, status); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "status",
		"booking_id="+strconv.FormatInt(bookingID, 10)+" status="+status)
	return nil
}
