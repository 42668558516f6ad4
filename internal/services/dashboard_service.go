package services

import (
	"database/sql"
	"time"

	intconfig "carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"
)

const defaultRecentLimit = 5

// DashboardService derives the owner summary from the persisted booking set.
// Pure read; recomputed on every request.
type DashboardService struct {
	BookingRepo repositories.BookingRepository
	CarRepo     repositories.CarRepository
	DB          *sql.DB

	RecentLimit int
	Now         func() time.Time
}

func (s DashboardService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DashboardService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s DashboardService) cars() repositories.CarRepository {
	if s.CarRepo.DB != nil {
		return s.CarRepo
	}
	return repositories.CarRepository{DB: s.db()}
}

func (s DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ComputeSummary aggregates counts, the recent booking list, and monthly
// revenue for the owner. Revenue counts confirmed bookings created in the
// current calendar month; pending money is not revenue yet and cancelled
// never is. An owner with no cars or bookings gets an all-zero summary.
func (s DashboardService) ComputeSummary(ownerID int64) (models.DashboardSummary, error) {
	summary := models.DashboardSummary{RecentBookings: []models.Booking{}}

	if ownerID <= 0 {
		return summary, domain.ValidationError{Field: "owner_id", Msg: "invalid id"}
	}

	totalCars, err := s.cars().CountByOwner(ownerID)
	if err != nil {
		return summary, domain.InternalError{Msg: "failed to count cars", Err: err}
	}
	summary.TotalCars = totalCars

	bookings, err := s.bookings().ListByOwner(ownerID)
	if err != nil {
		return summary, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}

	limit := s.RecentLimit
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	now := s.now()

	summary.TotalBookings = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case models.StatusPending:
			summary.PendingBookings++
		case models.StatusConfirmed:
			summary.ConfirmedBookings++
			if created, err := utils.ParseDateTime(b.CreatedAt); err == nil && utils.SameMonth(created, now) {
				summary.MonthlyRevenue += b.Price
			}
		}
		if len(summary.RecentBookings) < limit {
			summary.RecentBookings = append(summary.RecentBookings, b)
		}
	}

	return summary, nil
}
