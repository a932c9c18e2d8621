package domain

import "time"

// EventStatus defines the lifecycle states of an absence event.
type EventStatus string

const (
	StatusPending  EventStatus = "PENDING"
	StatusApproved EventStatus = "APPROVED"
	StatusRejected EventStatus = "REJECTED"
)

// IsTerminal reports whether the status admits no further transition.
func (s EventStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Event is one absence record. It belongs to exactly one user and references
// exactly one absence type and one region.
type Event struct {
	EventID       string      `json:"eventID"` // Primary key (UUID)
	UserID        string      `json:"userID"`  // Owner, FK -> users.user_id
	AbsenceTypeID string      `json:"absenceTypeID"`
	Region        string      `json:"region"`    // UF code, uppercase
	StartDate     time.Time   `json:"startDate"` // Inclusive
	EndDate       time.Time   `json:"endDate"`   // Inclusive
	TotalDays     int         `json:"totalDays"` // Literal inclusive calendar span
	Status        EventStatus `json:"status"`
	ApproverID    string      `json:"approverID"` // Creating actor until decided
	DecidedAt     *time.Time  `json:"decidedAt,omitempty"`
	AuditFields
}

// InclusiveDays returns the number of calendar days between start and end,
// counting both endpoints. Holidays and weekends are never subtracted.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// RecomputeTotalDays refreshes TotalDays from the current date range. It must
// be called whenever either date changes.
func (e *Event) RecomputeTotalDays() {
	e.TotalDays = InclusiveDays(e.StartDate, e.EndDate)
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
