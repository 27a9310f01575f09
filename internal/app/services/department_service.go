package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo DepartmentStore
	logger         zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo DepartmentStore, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// validateDepartment validates department data before database operations
func (s *DepartmentService) validateDepartment(department *models.Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}

	department.Name = strings.TrimSpace(department.Name)
	if department.Name == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Department name cannot be empty")
	}

	return nil
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	s.logger.Info().Int64("departmentID", department.ID).Str("name", department.Name).Msg("Department created")
	return nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// GetAllDepartments retrieves all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// UpdateDepartment updates an existing department. pathID must match the
// department's ID when the body carries one.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, pathID int64, department *models.Department) error {
	if department.ID != 0 && department.ID != pathID {
		return apperrors.ErrIDMismatch
	}
	department.ID = pathID

	if err := s.validateDepartment(department); err != nil {
		return err
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}
	return nil
}

// DeleteDepartment deletes a department by ID
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	s.logger.Info().Int64("departmentID", id).Msg("Department deleted")
	return nil
}
