package services

import (
	"testing"
	"time"

	"carrental/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingCols = []string{
	"id", "booking_code", "car_id", "user_id", "owner_id",
	"pickup_date", "return_date",
	"renter_name", "phone", "address", "national_id", "license_number",
	"driver_needed", "driver_name", "driver_phone", "driver_address",
	"payment_method", "card_name", "card_number", "card_expiry", "bank_code",
	"status", "price",
	"brand", "model",
	"created_at", "updated_at",
}

func addBookingRow(rows *sqlmock.Rows, id int64, status string, price int64, createdAt string) *sqlmock.Rows {
	return rows.AddRow(
		id, "code", 7, 3, 2,
		"2024-06-01", "2024-06-04",
		"Arun Mehta", "+91 90000 11111", "12 Residency Road", "123412341234", "KA05",
		false, "", "", "",
		"cash", "", "", "", "",
		status, price,
		"Toyota", "Fortuner",
		createdAt, createdAt,
	)
}

func newDashboardService(t *testing.T) (DashboardService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := DashboardService{
		BookingRepo: repositories.BookingRepository{DB: db},
		CarRepo:     repositories.CarRepository{DB: db},
		DB:          db,
		Now: func() time.Time {
			return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
		},
	}
	return svc, mock, func() { db.Close() }
}

func TestComputeSummaryEmptyOwner(t *testing.T) {
	svc, mock, done := newDashboardService(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM bookings b").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(bookingCols))

	got, err := svc.ComputeSummary(2)
	if err != nil {
		t.Fatalf("summary error: %v", err)
	}
	if got.TotalCars != 0 || got.TotalBookings != 0 || got.PendingBookings != 0 || got.ConfirmedBookings != 0 {
		t.Fatalf("counts not zero: %+v", got)
	}
	if got.MonthlyRevenue != 0 {
		t.Fatalf("revenue %d, want 0", got.MonthlyRevenue)
	}
	if got.RecentBookings == nil || len(got.RecentBookings) != 0 {
		t.Fatalf("recent bookings should be empty slice, got %#v", got.RecentBookings)
	}
}

func TestComputeSummaryAggregates(t *testing.T) {
	svc, mock, done := newDashboardService(t)
	defer done()
	svc.RecentLimit = 2

	rows := sqlmock.NewRows(bookingCols)
	addBookingRow(rows, 4, "confirmed", 3000, "2024-06-10 09:00:00")
	addBookingRow(rows, 3, "pending", 2000, "2024-06-08 09:00:00")
	addBookingRow(rows, 2, "cancelled", 1500, "2024-06-05 09:00:00")
	addBookingRow(rows, 1, "confirmed", 9999, "2024-05-01 09:00:00")

	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("FROM bookings b").WithArgs(int64(2)).
		WillReturnRows(rows)

	got, err := svc.ComputeSummary(2)
	if err != nil {
		t.Fatalf("summary error: %v", err)
	}
	if got.TotalCars != 3 {
		t.Fatalf("total cars %d, want 3", got.TotalCars)
	}
	if got.TotalBookings != 4 || got.PendingBookings != 1 || got.ConfirmedBookings != 2 {
		t.Fatalf("counts wrong: %+v", got)
	}
	// Only the confirmed June booking counts; May confirmed and June
	// pending/cancelled do not.
	if got.MonthlyRevenue != 3000 {
		t.Fatalf("monthly revenue %d, want 3000", got.MonthlyRevenue)
	}
	if len(got.RecentBookings) != 2 || got.RecentBookings[0].ID != 4 || got.RecentBookings[1].ID != 3 {
		t.Fatalf("recent bookings wrong: %+v", got.RecentBookings)
	}
}
