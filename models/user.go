package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleDefault UserRole = "default"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Role      UserRole  `json:"role" gorm:"not null;default:'default'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
