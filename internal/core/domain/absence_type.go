package domain

import "strings"

// VacationDescription is the catalog description that identifies the vacation
// absence type. The catalog carries no stable "vacation" id, so matching is
// by normalized description.
const VacationDescription = "Vacation"

// AbsenceType is a catalog entity describing one kind of leave.
type AbsenceType struct {
	AbsenceTypeID string `json:"absenceTypeID"` // Primary key (UUID)
	Description   string `json:"description"`
	UsesShift     bool   `json:"usesShift"` // Gates whether events of this type may reference a shift
	AuditFields
}

// IsVacation reports whether this catalog row is the vacation type.
// Matching is case-insensitive on the trimmed description. All call sites go
// through here so an id-based check can replace it without touching them.
func (t *AbsenceType) IsVacation() bool {
	return MatchesVacation(t.Description)
}

// MatchesVacation applies the vacation description matching rule.
func MatchesVacation(description string) bool {
	return strings.EqualFold(strings.TrimSpace(description), VacationDescription)
}

// Shift is a catalog entity for work shifts that some absence types reference.
type Shift struct {
	ShiftID     string `json:"shiftID"` // Primary key (UUID)
	Description string `json:"description"`
	AuditFields
}
