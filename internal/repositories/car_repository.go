package repositories

import (
	"database/sql"
	"errors"

	intconfig "carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

type CarRepository struct {
	DB *sql.DB
}

func (r CarRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const carColumns = `
	id, owner_id, brand, model, year, category, fuel_type, transmission,
	seating_capacity, location, price_per_day, available`

func scanCar(row interface{ Scan(...any) error }) (models.Car, error) {
	var c models.Car
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Brand, &c.Model, &c.Year, &c.Category,
		&c.FuelType, &c.Transmission, &c.SeatingCapacity, &c.Location,
		&c.PricePerDay, &c.Available,
	)
	return c, err
}

// GetByID resolves a car reference. Booking creation relies on this to
// derive the owner and the trusted daily rate.
func (r CarRepository) GetByID(id int64) (models.Car, error) {
	if id <= 0 {
		return models.Car{}, domain.ValidationError{Field: "car_id", Msg: "invalid id"}
	}
	c, err := scanCar(r.db().QueryRow(`SELECT`+carColumns+` FROM cars WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Car{}, domain.NotFoundError{Resource: "car", Err: err}
		}
		return models.Car{}, err
	}
	return c, nil
}

func (r CarRepository) CountByOwner(ownerID int64) (int, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM cars WHERE owner_id = ?`, ownerID).Scan(&count)
	return count, err
}

func (r CarRepository) ListAvailable() ([]models.Car, error) {
	return r.list(`SELECT`+carColumns+` FROM cars WHERE available = 1 ORDER BY id DESC`)
}

func (r CarRepository) ListByOwner(ownerID int64) ([]models.Car, error) {
	return r.list(`SELECT`+carColumns+` FROM cars WHERE owner_id = ? ORDER BY id DESC`, ownerID)
}

func (r CarRepository) list(query string, args ...any) ([]models.Car, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CarRepository) Insert(c models.Car) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO cars (owner_id, brand, model, year, category, fuel_type,
			transmission, seating_capacity, location, price_per_day, available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.OwnerID, c.Brand, c.Model, c.Year, c.Category, c.FuelType,
		c.Transmission, c.SeatingCapacity, c.Location, c.PricePerDay, c.Available)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Delete removes an owner's car; owner scoping keeps one owner from touching
// another's catalog.
func (r CarRepository) Delete(id, ownerID int64) error {
	res, err := r.db().Exec(`DELETE FROM cars WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "car"}
	}
	return nil
}
