package dto

import (
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// DateLayout is the wire format for civil dates.
const DateLayout = "2006-01-02"

// CreateEventRequest defines the payload for filing a new absence event.
type CreateEventRequest struct {
	UserID        string `json:"userID" binding:"required"`
	AbsenceTypeID string `json:"absenceTypeID" binding:"required"`
	Region        string `json:"region" binding:"required,len=2"`
	StartDate     string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate       string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// UpdateEventRequest defines the closed set of editable event fields.
// Pointers distinguish omitted fields from zero values. Status is
// deliberately absent: it only moves through approve/reject.
type UpdateEventRequest struct {
	AbsenceTypeID *string `json:"absenceTypeID"`
	Region        *string `json:"region" binding:"omitempty,len=2"`
	StartDate     *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	UserID  string `form:"user_id"`
	GroupID string `form:"group_id"`
	Status  string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// EventResponse is the wire representation of an absence event.
type EventResponse struct {
	EventID       string     `json:"eventID"`
	UserID        string     `json:"userID"`
	AbsenceTypeID string     `json:"absenceTypeID"`
	Region        string     `json:"region"`
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate"`
	TotalDays     int        `json:"totalDays"`
	Status        string     `json:"status"`
	ApproverID    string     `json:"approverID"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToEventResponse converts a domain.Event to its wire representation.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:       e.EventID,
		UserID:        e.UserID,
		AbsenceTypeID: e.AbsenceTypeID,
		Region:        e.Region,
		StartDate:     e.StartDate.Format(DateLayout),
		EndDate:       e.EndDate.Format(DateLayout),
		TotalDays:     e.TotalDays,
		Status:        string(e.Status),
		ApproverID:    e.ApproverID,
		DecidedAt:     e.DecidedAt,
		CreatedAt:     e.CreatedAt,
	}
}

// ToListEventResponse converts a slice of events.
func ToListEventResponse(events []domain.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = ToEventResponse(&events[i])
	}
	return out
}

// CalendarResponse is the calendar feed: events shaped for rendering plus
// the total count, optionally narrowed to one group.
type CalendarResponse struct {
	GroupID     string          `json:"groupID,omitempty"`
	Events      []EventResponse `json:"events"`
	TotalEvents int             `json:"totalEvents"`
}

// VacationSummaryResponse reports the rolling-window accrual figure.
type VacationSummaryResponse struct {
	UserID        string `json:"userID"`
	ReferenceDate string `json:"referenceDate"`
	ApprovedDays  int    `json:"approvedDays"`
	AllowanceDays int    `json:"allowanceDays"`
	Exceeded      bool   `json:"exceeded"`
}
