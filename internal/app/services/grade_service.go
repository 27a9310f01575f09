package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// GradeService handles grade-related operations
type GradeService struct {
	gradeRepo  GradeStore
	courseRepo CourseStore
	authz      RoleValidator
	logger     zerolog.Logger
}

// NewGradeService creates a new GradeService
func NewGradeService(gradeRepo GradeStore, courseRepo CourseStore, authz RoleValidator, logger zerolog.Logger) *GradeService {
	return &GradeService{
		gradeRepo:  gradeRepo,
		courseRepo: courseRepo,
		authz:      authz,
		logger:     logger,
	}
}

func (s *GradeService) validateGrade(ctx context.Context, grade *models.Grade) error {
	if grade.Value < models.MinGradeValue || grade.Value > models.MaxGradeValue {
		return apperrors.ErrGradeOutOfRange
	}

	if err := s.authz.ValidateStudent(ctx, grade.StudentID); err != nil {
		return err
	}

	if _, err := s.courseRepo.GetByID(ctx, grade.CourseID); err != nil {
		return fmt.Errorf("error checking course: %w", err)
	}

	return nil
}

// CreateGrade records a grade for a student in a course
func (s *GradeService) CreateGrade(ctx context.Context, grade *models.Grade) error {
	if err := s.validateGrade(ctx, grade); err != nil {
		return err
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return fmt.Errorf("error creating grade: %w", err)
	}

	s.logger.Info().
		Int64("gradeID", grade.ID).
		Int64("studentID", grade.StudentID).
		Int64("courseID", grade.CourseID).
		Msg("Grade recorded")
	return nil
}

// GetGradeByID retrieves a grade with its student and course
func (s *GradeService) GetGradeByID(ctx context.Context, id int64) (*models.Grade, error) {
	grade, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}
	return grade, nil
}

// GetAllGrades retrieves all grades with their students and courses
func (s *GradeService) GetAllGrades(ctx context.Context) ([]*models.Grade, error) {
	grades, err := s.gradeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}

// UpdateGrade updates an existing grade
func (s *GradeService) UpdateGrade(ctx context.Context, pathID int64, grade *models.Grade) error {
	if grade.ID != 0 && grade.ID != pathID {
		return apperrors.ErrIDMismatch
	}
	grade.ID = pathID

	if err := s.validateGrade(ctx, grade); err != nil {
		return err
	}

	if err := s.gradeRepo.Update(ctx, grade); err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}
	return nil
}

// DeleteGrade deletes a grade
func (s *GradeService) DeleteGrade(ctx context.Context, id int64) error {
	if err := s.gradeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}
	return nil
}
