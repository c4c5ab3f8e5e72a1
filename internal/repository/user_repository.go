package repository

import (
	"database/sql"
	"fmt"

	"classadmin/internal/entity"
)

// UserStore persists account records. Passwords are stored as given,
// without hashing (see DESIGN.md).
type UserStore interface {
	// Register creates the account and reports false when the id is
	// already taken. The existing record is left untouched.
	Register(userID, password, role string) (bool, error)
	// Get returns nil without error when no such user exists.
	Get(userID string) (*entity.User, error)
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Register(userID, password, role string) (bool, error) {
	res, err := r.db.Exec(`
        INSERT INTO users (user_id, password, role)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id) DO NOTHING
    `, userID, password, role)
	if err != nil {
		return false, fmt.Errorf("failed to register user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to register user: %w", err)
	}

	return affected == 1, nil
}

func (r *UserRepository) Get(userID string) (*entity.User, error) {
	var user entity.User
	err := r.db.QueryRow(`
        SELECT user_id, password, role, created_at
        FROM users
        WHERE user_id = $1
    `, userID).Scan(&user.UserID, &user.Password, &user.Role, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
