package dto

import (
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// CreateUserRequest defines the payload for registering a user.
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=RH COMUM"`
	IsManager bool   `json:"isManager"`
	GroupID   string `json:"groupID" binding:"required"`
	Region    string `json:"region" binding:"required,len=2"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
}

// UpdateUserRequest defines the closed set of editable user fields.
// Role and manager flag are updatable by elevated actors only.
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	Role      *string `json:"role" binding:"omitempty,oneof=RH COMUM"`
	IsManager *bool   `json:"isManager"`
	Region    *string `json:"region" binding:"omitempty,len=2"`
	GroupID   *string `json:"groupID"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	GroupID string `form:"group_id"`
	Role    string `form:"role" binding:"omitempty,oneof=RH COMUM"`
}

// UserResponse is the wire representation of a user. The credential hash
// never leaves the service layer.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsManager bool      `json:"isManager"`
	GroupID   string    `json:"groupID"`
	Region    string    `json:"region"`
	StartDate string    `json:"startDate"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its wire representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsManager: u.IsManager,
		GroupID:   u.GroupID,
		Region:    u.Region,
		StartDate: u.StartDate.Format(DateLayout),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of users.
func ToListUserResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
