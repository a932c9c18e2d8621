package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tooff-app/tooff-backend/internal/apperrors"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portsrepo "github.com/tooff-app/tooff-backend/internal/core/ports/repositories"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/dto"
)

// absenceTypeService implements the AbsenceTypeSvcFacade interface.
type absenceTypeService struct {
	BaseService
	absenceTypeRepo portsrepo.AbsenceTypeRepositoryFacade
	shiftRepo       portsrepo.ShiftRepositoryFacade
	userRepo        portsrepo.UserReader
}

// NewAbsenceTypeService creates a new absence type service with the provided dependencies.
func NewAbsenceTypeService(
	absenceTypeRepo portsrepo.AbsenceTypeRepositoryFacade,
	shiftRepo portsrepo.ShiftRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.AbsenceTypeSvcFacade {
	return &absenceTypeService{
		absenceTypeRepo: absenceTypeRepo,
		shiftRepo:       shiftRepo,
		userRepo:        userRepo,
	}
}

// Ensure absenceTypeService implements the AbsenceTypeSvcFacade interface
var _ portssvc.AbsenceTypeSvcFacade = (*absenceTypeService)(nil)

func (s *absenceTypeService) requireRH(ctx context.Context, actorID string) error {
	actor, err := s.userRepo.FindUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", apperrors.ErrActorNotFound, actorID)
		}
		return err
	}
	if actor.Role != domain.RoleRH {
		return fmt.Errorf("%w: catalog management requires the RH role", apperrors.ErrForbidden)
	}
	return nil
}

// CreateAbsenceType adds a catalog row. RH only.
func (s *absenceTypeService) CreateAbsenceType(ctx context.Context, actorID string, req dto.CreateAbsenceTypeRequest) (*domain.AbsenceType, error) {
	if err := s.requireRH(ctx, actorID); err != nil {
		return nil, err
	}

	now := time.Now()
	absenceType := domain.AbsenceType{
		AbsenceTypeID: uuid.NewString(),
		Description:   req.Description,
		UsesShift:     req.UsesShift,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.absenceTypeRepo.SaveAbsenceType(ctx, absenceType); err != nil {
		s.LogError(ctx, err, "Failed to save absence type", slog.String("description", req.Description))
		return nil, err
	}

	s.LogInfo(ctx, "Absence type created", slog.String("absence_type_id", absenceType.AbsenceTypeID))
	return &absenceType, nil
}

// GetAbsenceType retrieves a catalog row.
func (s *absenceTypeService) GetAbsenceType(ctx context.Context, absenceTypeID string) (*domain.AbsenceType, error) {
	return s.absenceTypeRepo.FindAbsenceTypeByID(ctx, absenceTypeID)
}

// ListAbsenceTypes retrieves the full catalog.
func (s *absenceTypeService) ListAbsenceTypes(ctx context.Context) ([]domain.AbsenceType, error) {
	types, err := s.absenceTypeRepo.ListAbsenceTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list absence types")
		return nil, err
	}
	if types == nil {
		return []domain.AbsenceType{}, nil
	}
	return types, nil
}

// CreateShift adds a shift row. RH only.
func (s *absenceTypeService) CreateShift(ctx context.Context, actorID string, req dto.CreateShiftRequest) (*domain.Shift, error) {
	if err := s.requireRH(ctx, actorID); err != nil {
		return nil, err
	}

	now := time.Now()
	shift := domain.Shift{
		ShiftID:     uuid.NewString(),
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		s.LogError(ctx, err, "Failed to save shift", slog.String("description", req.Description))
		return nil, err
	}

	s.LogInfo(ctx, "Shift created", slog.String("shift_id", shift.ShiftID))
	return &shift, nil
}

// GetShift retrieves a shift row.
func (s *absenceTypeService) GetShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	return s.shiftRepo.FindShiftByID(ctx, shiftID)
}

// ListShifts retrieves the full shift catalog.
func (s *absenceTypeService) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	shifts, err := s.shiftRepo.ListShifts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shifts")
		return nil, err
	}
	if shifts == nil {
		return []domain.Shift{}, nil
	}
	return shifts, nil
}
