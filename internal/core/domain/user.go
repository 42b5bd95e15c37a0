package domain

import "time"

// UserRole defines the access level of a user.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleClerk  UserRole = "CLERK"
	RoleViewer UserRole = "VIEWER"
)

// IsValid reports whether the role is one of the declared values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClerk, RoleViewer:
		return true
	}
	return false
}

// User represents an operator of the application.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	FullName     string   `json:"fullName"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
