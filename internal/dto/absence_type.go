package dto

import "github.com/tooff-app/tooff-backend/internal/core/domain"

// CreateAbsenceTypeRequest defines the payload for adding a catalog row.
type CreateAbsenceTypeRequest struct {
	Description string `json:"description" binding:"required,max=50"`
	UsesShift   bool   `json:"usesShift"`
}

// AbsenceTypeResponse is the wire representation of a catalog row.
type AbsenceTypeResponse struct {
	AbsenceTypeID string `json:"absenceTypeID"`
	Description   string `json:"description"`
	UsesShift     bool   `json:"usesShift"`
	IsVacation    bool   `json:"isVacation"`
}

// ToAbsenceTypeResponse converts a domain.AbsenceType to its wire form.
func ToAbsenceTypeResponse(t *domain.AbsenceType) AbsenceTypeResponse {
	return AbsenceTypeResponse{
		AbsenceTypeID: t.AbsenceTypeID,
		Description:   t.Description,
		UsesShift:     t.UsesShift,
		IsVacation:    t.IsVacation(),
	}
}

// ToListAbsenceTypeResponse converts a slice of catalog rows.
func ToListAbsenceTypeResponse(types []domain.AbsenceType) []AbsenceTypeResponse {
	out := make([]AbsenceTypeResponse, len(types))
	for i := range types {
		out[i] = ToAbsenceTypeResponse(&types[i])
	}
	return out
}

// CreateShiftRequest defines the payload for adding a shift row.
type CreateShiftRequest struct {
	Description string `json:"description" binding:"required,max=20"`
}

// ShiftResponse is the wire representation of a shift row.
type ShiftResponse struct {
	ShiftID     string `json:"shiftID"`
	Description string `json:"description"`
}

// ToShiftResponse converts a domain.Shift to its wire form.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{ShiftID: s.ShiftID, Description: s.Description}
}

// ToListShiftResponse converts a slice of shifts.
func ToListShiftResponse(shifts []domain.Shift) []ShiftResponse {
	out := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		out[i] = ToShiftResponse(&shifts[i])
	}
	return out
}
