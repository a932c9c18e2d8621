package domain

import (
	"strings"
	"time"
)

// UserRole defines the possible roles a user can have inside their company.
type UserRole string

const (
	// RoleRH is the elevated, company-wide administrative role.
	RoleRH UserRole = "RH"
	// RoleComum is the regular member role. A COMUM user may still carry the
	// manager flag, which grants group-level approval authority.
	RoleComum UserRole = "COMUM"
)

// User represents an employee. Group membership is mandatory for any scope:
// a user with a dangling group reference is treated as permission-less.
type User struct {
	UserID       string     `json:"userID"` // Primary key (UUID)
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	IsManager    bool       `json:"isManager"` // Independent of Role
	GroupID      string     `json:"groupID"`   // FK -> groups.group_id
	Region       string     `json:"region"`    // Two-letter UF code, uppercase
	StartDate    time.Time  `json:"startDate"` // Employment start
	IsActive     bool       `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// CanDecide reports whether the user holds approval authority at all. Plain
// COMUM members can never approve or reject, even their own events.
func (u *User) CanDecide() bool {
	return u.Role == RoleRH || u.IsManager
}

// IsElevated reports whether the user may act on records beyond their own.
func (u *User) IsElevated() bool {
	return u.Role == RoleRH || u.IsManager
}

// NormalizeRegion uppercases and trims a UF region code so that lookups and
// stored values always compare equal.
func NormalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}
