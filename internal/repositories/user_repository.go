package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID resolves a user id to its stored identity. Used by the auth guard,
// so a deleted user yields NotFoundError rather than a generic failure.
func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	if id <= 0 {
		return u, domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone, ''), role
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, err
	}
	return u, nil
}

// GetByEmail returns the user plus its password hash for login checks.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone, ''), role, password_hash
		FROM users
		WHERE email = ?
	`, strings.TrimSpace(email)).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, "", domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, "", err
	}
	return u, hash, nil
}

func (r UserRepository) EmailExists(email string) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, strings.TrimSpace(email)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateRole promotes/demotes a user, e.g. when becoming an owner.
// MySQL reports zero affected rows for a no-op update, so absence is not
// inferred here.
func (r UserRepository) UpdateRole(id int64, role string) error {
	_, err := r.db().Exec(`UPDATE users SET role = ? WHERE id = ?`, role, id)
	return err
}

func (r UserRepository) Insert(name, email, phone, passwordHash, role string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, password_hash, role)
		VALUES (?, ?, ?, ?, ?)
	`, strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone), passwordHash, role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
