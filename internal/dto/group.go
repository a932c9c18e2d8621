package dto

import (
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// CreateGroupRequest defines the payload for registering a group.
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Phone       string `json:"phone" binding:"required"`
	CompanyID   string `json:"companyID" binding:"required"`
}

// UpdateGroupRequest defines the closed set of editable group fields.
type UpdateGroupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
}

// GroupResponse is the wire representation of a group.
type GroupResponse struct {
	GroupID     string    `json:"groupID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	CompanyID   string    `json:"companyID"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToGroupResponse converts a domain.Group to its wire representation.
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:     g.GroupID,
		Name:        g.Name,
		Description: g.Description,
		Phone:       g.Phone,
		CompanyID:   g.CompanyID,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt,
	}
}

// ToListGroupResponse converts a slice of groups.
func ToListGroupResponse(groups []domain.Group) []GroupResponse {
	out := make([]GroupResponse, len(groups))
	for i := range groups {
		out[i] = ToGroupResponse(&groups[i])
	}
	return out
}
