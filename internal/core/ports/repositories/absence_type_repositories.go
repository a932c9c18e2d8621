package repositories

import (
	"context"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// AbsenceTypeReader defines read operations for the absence-type catalog
type AbsenceTypeReader interface {
	// FindAbsenceTypeByID retrieves a catalog row by its ID.
	FindAbsenceTypeByID(ctx context.Context, absenceTypeID string) (*domain.AbsenceType, error)

	// FindAbsenceTypeByDescription retrieves the first catalog row whose
	// trimmed description matches case-insensitively. Used for the vacation
	// lookup; returns apperrors.ErrNotFound when no row matches.
	FindAbsenceTypeByDescription(ctx context.Context, description string) (*domain.AbsenceType, error)

	// ListAbsenceTypes retrieves the full catalog.
	ListAbsenceTypes(ctx context.Context) ([]domain.AbsenceType, error)
}

// AbsenceTypeWriter defines write operations for the absence-type catalog
type AbsenceTypeWriter interface {
	// SaveAbsenceType persists a new catalog row.
	SaveAbsenceType(ctx context.Context, absenceType domain.AbsenceType) error
}

// AbsenceTypeRepositoryFacade combines catalog repository interfaces
type AbsenceTypeRepositoryFacade interface {
	AbsenceTypeReader
	AbsenceTypeWriter
}

// ShiftReader defines read operations for the shift catalog
type ShiftReader interface {
	// FindShiftByID retrieves a shift by its ID.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// ListShifts retrieves the full shift catalog.
	ListShifts(ctx context.Context) ([]domain.Shift, error)
}

// ShiftWriter defines write operations for the shift catalog
type ShiftWriter interface {
	// SaveShift persists a new shift.
	SaveShift(ctx context.Context, shift domain.Shift) error
}

// ShiftRepositoryFacade combines shift repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}
