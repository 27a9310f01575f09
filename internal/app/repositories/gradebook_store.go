package repositories

import (
	"context"

	"github.com/yigit/unirecords/internal/app/models"
)

// GradebookStore is the read-only view over users, courses and grades that
// backs the grades and schedule summary.
type GradebookStore struct {
	users   *UserRepository
	courses *CourseRepository
	grades  *GradeRepository
}

// NewGradebookStore creates a GradebookStore from the repository container
func NewGradebookStore(repos *Repositories) *GradebookStore {
	return &GradebookStore{
		users:   repos.UserRepository,
		courses: repos.CourseRepository,
		grades:  repos.GradeRepository,
	}
}

// FindUserWithDepartment returns the user with its department loaded
func (s *GradebookStore) FindUserWithDepartment(ctx context.Context, id int64) (*models.User, error) {
	return s.users.FindUserWithDepartment(ctx, id)
}

// ListCoursesEnrolledBy returns the courses the student holds a grade row for
func (s *GradebookStore) ListCoursesEnrolledBy(ctx context.Context, studentID int64) ([]*models.Course, error) {
	return s.courses.ListCoursesEnrolledBy(ctx, studentID)
}

// ListGradesFor returns the student's grade values keyed by course ID
func (s *GradebookStore) ListGradesFor(ctx context.Context, studentID int64) (map[int64]float64, error) {
	return s.grades.ListGradesFor(ctx, studentID)
}
