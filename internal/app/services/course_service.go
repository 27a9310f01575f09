package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService struct {
	courseRepo     CourseStore
	departmentRepo DepartmentStore
	authz          RoleValidator
	logger         zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo CourseStore, departmentRepo DepartmentStore, authz RoleValidator, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
		authz:          authz,
		logger:         logger,
	}
}

// validateCourse checks the title and the referenced teacher and department
func (s *CourseService) validateCourse(ctx context.Context, course *models.Course) error {
	course.Title = strings.TrimSpace(course.Title)
	if course.Title == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Course title cannot be empty")
	}

	if course.TeacherID != nil {
		if err := s.authz.ValidateTeacher(ctx, *course.TeacherID); err != nil {
			return err
		}
	}

	if course.DepartmentID != nil {
		exists, err := s.departmentRepo.Exists(ctx, *course.DepartmentID)
		if err != nil {
			return fmt.Errorf("error checking department: %w", err)
		}
		if !exists {
			return apperrors.ErrDepartmentNotFound
		}
	}

	return nil
}

// CreateCourse creates a new course
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(ctx, course); err != nil {
		return err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Int64("courseID", course.ID).Str("title", course.Title).Msg("Course created")
	return nil
}

// GetCourseByID retrieves a course with its teacher and department
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves all courses with their teachers and departments
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse updates an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, pathID int64, course *models.Course) error {
	if course.ID != 0 && course.ID != pathID {
		return apperrors.ErrIDMismatch
	}
	course.ID = pathID

	if err := s.validateCourse(ctx, course); err != nil {
		return err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// DeleteCourse deletes a course and, through the database, its grades
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	s.logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
