package services

import (
	"testing"

	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var carCols = []string{
	"id", "owner_id", "brand", "model", "year", "category", "fuel_type",
	"transmission", "seating_capacity", "location", "price_per_day", "available",
}

func validCreateRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		CarID:         7,
		PickupDate:    "2024-06-01",
		ReturnDate:    "2024-06-04",
		Name:          "Arun Mehta",
		Phone:         "+91 90000 11111",
		Address:       "12 Residency Road, Bangalore",
		NationalID:    "123412341234",
		LicenseNumber: "KA05 20230001234",
		PaymentMethod: models.PaymentUPI,
	}
}

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		CarRepo:     repositories.CarRepository{DB: db},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func TestCreateBookingUnknownCarPersistsNothing(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM cars WHERE id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(carCols))

	_, err := svc.CreateBooking(validCreateRequest(), 3)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected SQL ran: %v", err)
	}
}

func TestCreateBookingRejectsBadDatesBeforeAnyQuery(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	req := validCreateRequest()
	req.ReturnDate = req.PickupDate

	_, err := svc.CreateBooking(req, 3)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected SQL ran: %v", err)
	}
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM cars WHERE id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(carCols).
			AddRow(7, 2, "Toyota", "Fortuner", 2022, "SUV", "Diesel", "Automatic", 7, "Bangalore", 1000, true))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.CreateBooking(validCreateRequest(), 3)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRecomputesPriceServerSide(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM cars WHERE id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(carCols).
			AddRow(7, 2, "Toyota", "Fortuner", 2022, "SUV", "Diesel", "Automatic", 7, "Bangalore", 1000, true))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(11, 1))

	req := validCreateRequest()
	req.DriverNeeded = true
	req.DriverName = "Rajesh Kumar"
	req.DriverPhone = "+91 98765 43210"
	req.DriverAddress = "123 MG Road, Bangalore"

	b, err := svc.CreateBooking(req, 3)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	// 3 days x 1000 rental + 3 days x 500 driver.
	if b.Price != 4500 {
		t.Fatalf("price %d, want 4500", b.Price)
	}
	if b.Status != models.StatusPending {
		t.Fatalf("status %q, want pending", b.Status)
	}
	if b.OwnerID != 2 || b.UserID != 3 || b.ID != 11 {
		t.Fatalf("references wrong: %+v", b)
	}
	if b.BookingCode == "" {
		t.Fatalf("booking code not assigned")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingUPIKeepsPaymentFieldsEmpty(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM cars WHERE id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(carCols).
			AddRow(7, 2, "Toyota", "Fortuner", 2022, "SUV", "Diesel", "Automatic", 7, "Bangalore", 1000, true))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(12, 1))

	b, err := svc.CreateBooking(validCreateRequest(), 3)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if b.PaymentMethod != "upi" {
		t.Fatalf("payment method %q, want upi", b.PaymentMethod)
	}
	if b.CardName != "" || b.CardNumber != "" || b.CardExpiry != "" || b.BankCode != "" {
		t.Fatalf("card/bank fields populated for upi: %+v", b)
	}
}

func TestCreateBookingCardRequiresPersistedFields(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	req := validCreateRequest()
	req.PaymentMethod = models.PaymentCard
	req.CardName = "ARUN MEHTA"
	req.CardNumber = "4111111111111111"
	// expiry missing

	_, err := svc.CreateBooking(req, 3)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected SQL ran: %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	if err := svc.UpdateStatus(5, 2, "archived"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	mock.ExpectExec("UPDATE bookings SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := svc.UpdateStatus(5, 2, "confirmed"); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
