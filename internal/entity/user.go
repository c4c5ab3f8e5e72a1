package entity

import "time"

const (
	RoleAdmin   = "Admin"
	RoleStudent = "Student"
)

// ValidRole reports whether s is one of the two known roles.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleStudent
}

type User struct {
	UserID    string    `json:"user_id"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
