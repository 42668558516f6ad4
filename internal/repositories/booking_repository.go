package repositories

import (
	"database/sql"
	"errors"

	intconfig "carrental/internal/config"
	intdb "carrental/internal/db"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	b.id, b.booking_code, b.car_id, b.user_id, b.owner_id,
	DATE_FORMAT(b.pickup_date, '%Y-%m-%d'), DATE_FORMAT(b.return_date, '%Y-%m-%d'),
	b.renter_name, b.phone, b.address, b.national_id, b.license_number,
	b.driver_needed, COALESCE(b.driver_name, ''), COALESCE(b.driver_phone, ''), COALESCE(b.driver_address, ''),
	b.payment_method, COALESCE(b.card_name, ''), COALESCE(b.card_number, ''), COALESCE(b.card_expiry, ''), COALESCE(b.bank_code, ''),
	b.status, b.price,
	COALESCE(c.brand, ''), COALESCE(c.model, ''),
	DATE_FORMAT(b.created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(b.updated_at, '%Y-%m-%d %H:%i:%s')`

const bookingFrom = ` FROM bookings b LEFT JOIN cars c ON c.id = b.car_id `

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.BookingCode, &b.CarID, &b.UserID, &b.OwnerID,
		&b.PickupDate, &b.ReturnDate,
		&b.RenterName, &b.Phone, &b.Address, &b.NationalID, &b.LicenseNumber,
		&b.DriverNeeded, &b.DriverName, &b.DriverPhone, &b.DriverAddress,
		&b.PaymentMethod, &b.CardName, &b.CardNumber, &b.CardExpiry, &b.BankCode,
		&b.Status, &b.Price,
		&b.CarBrand, &b.CarModel,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// Insert persists a new booking and returns its id. Optional driver and
// payment fields are stored as NULL when absent so listings stay clean.
func (r BookingRepository) Insert(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (booking_code, car_id, user_id, owner_id,
			pickup_date, return_date,
			renter_name, phone, address, national_id, license_number,
			driver_needed, driver_name, driver_phone, driver_address,
			payment_method, card_name, card_number, card_expiry, bank_code,
			status, price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.BookingCode, b.CarID, b.UserID, b.OwnerID,
		b.PickupDate, b.ReturnDate,
		b.RenterName, b.Phone, b.Address, b.NationalID, b.LicenseNumber,
		b.DriverNeeded, intdb.NullIfEmpty(b.DriverName), intdb.NullIfEmpty(b.DriverPhone), intdb.NullIfEmpty(b.DriverAddress),
		b.PaymentMethod, intdb.NullIfEmpty(b.CardName), intdb.NullIfEmpty(b.CardNumber), intdb.NullIfEmpty(b.CardExpiry), intdb.NullIfEmpty(b.BankCode),
		b.Status, b.Price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "booking_id", Msg: "invalid id"}
	}
	b, err := scanBooking(r.db().QueryRow(`SELECT`+bookingColumns+bookingFrom+`WHERE b.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// ListByOwner returns all bookings against the owner's cars, newest first.
func (r BookingRepository) ListByOwner(ownerID int64) ([]models.Booking, error) {
	return r.list(`SELECT`+bookingColumns+bookingFrom+`WHERE b.owner_id = ? ORDER BY b.created_at DESC, b.id DESC`, ownerID)
}

// ListRecentByOwner returns the owner's newest bookings, bounded by limit.
func (r BookingRepository) ListRecentByOwner(ownerID int64, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 5
	}
	return r.list(`SELECT`+bookingColumns+bookingFrom+`WHERE b.owner_id = ? ORDER BY b.created_at DESC, b.id DESC LIMIT ?`, ownerID, limit)
}

func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	return r.list(`SELECT`+bookingColumns+bookingFrom+`WHERE b.user_id = ? ORDER BY b.created_at DESC, b.id DESC`, userID)
}

func (r BookingRepository) list(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// HasOverlap reports whether a non-cancelled booking for the car overlaps
// the requested closed-open date range.
func (r BookingRepository) HasOverlap(carID int64, pickupDate, returnDate string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*)
		FROM bookings
		WHERE car_id = ?
		  AND status <> 'cancelled'
		  AND pickup_date < ?
		  AND return_date > ?
	`, carID, returnDate, pickupDate).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus moves a booking, scoped to its owner. Returns NotFoundError
// when the booking does not exist or belongs to someone else.
func (r BookingRepository) UpdateStatus(id, ownerID int64, status string) error {
	res, err := r.db().Exec(`
		UPDATE bookings SET status = ?, updated_at = NOW()
		WHERE id = ? AND owner_id = ?
	`, status, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
