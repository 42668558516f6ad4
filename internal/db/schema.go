package db

import (
	"database/sql"
	"errors"
)

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

func HasColumn(q QueryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)

	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'user',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS cars (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	owner_id BIGINT NOT NULL,
	brand VARCHAR(100) NOT NULL,
	model VARCHAR(100) NOT NULL,
	year INT NOT NULL DEFAULT 0,
	category VARCHAR(100) NOT NULL DEFAULT '',
	fuel_type VARCHAR(50) NOT NULL DEFAULT '',
	transmission VARCHAR(50) NOT NULL DEFAULT '',
	seating_capacity INT NOT NULL DEFAULT 0,
	location VARCHAR(255) NOT NULL DEFAULT '',
	price_per_day BIGINT NOT NULL,
	available TINYINT(1) NOT NULL DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_cars_owner (owner_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	// No security-code column, and there never will be one.
	`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_code VARCHAR(64) NOT NULL,
	car_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	owner_id BIGINT NOT NULL,
	pickup_date DATE NOT NULL,
	return_date DATE NOT NULL,
	renter_name VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL,
	address VARCHAR(500) NOT NULL,
	national_id VARCHAR(50) NOT NULL,
	license_number VARCHAR(100) NOT NULL,
	driver_needed TINYINT(1) NOT NULL DEFAULT 0,
	driver_name VARCHAR(255) NULL,
	driver_phone VARCHAR(100) NULL,
	driver_address VARCHAR(500) NULL,
	payment_method VARCHAR(20) NOT NULL DEFAULT 'cash',
	card_name VARCHAR(255) NULL,
	card_number VARCHAR(32) NULL,
	card_expiry VARCHAR(10) NULL,
	bank_code VARCHAR(50) NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	price BIGINT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_booking_code (booking_code),
	KEY idx_bookings_owner (owner_id),
	KEY idx_bookings_user (user_id),
	KEY idx_bookings_car (car_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

var schemaTables = []string{"users", "cars", "bookings"}

// EnsureSchema creates the users/cars/bookings tables when missing and
// backfills columns older deployments predate. Statements are idempotent so
// startup can run this unconditionally.
func EnsureSchema(conn *sql.DB) error {
	if conn == nil {
		return errors.New("db not available")
	}
	for i, ddl := range schemaDDL {
		if HasTable(conn, schemaTables[i]) {
			continue
		}
		if _, err := conn.Exec(ddl); err != nil {
			return err
		}
	}

	// Pre-code deployments stored bookings without a public code.
	if HasTable(conn, "bookings") && !HasColumn(conn, "bookings", "booking_code") {
		if _, err := conn.Exec(`ALTER TABLE bookings ADD COLUMN booking_code VARCHAR(64) NOT NULL DEFAULT '' AFTER id`); err != nil {
			return err
		}
	}
	return nil
}
