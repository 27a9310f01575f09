package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/yigit/unirecords/internal/app/models"
)

// Services defined in this package:
// - AuthService: login, registration and user lookups for the auth endpoints
// - UserService: user CRUD including profile documents
// - DepartmentService, CourseService, GradeService: CRUD for the catalogue
// - GradesAndScheduleService: the read-only grades and schedule summary
//
// Each service depends on the narrow store interfaces below; the
// repositories package satisfies them against PostgreSQL.

// UserStore is the user persistence used by the services
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserWithDepartment(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.User, int64, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentStore is the department persistence used by the services
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the course persistence used by the services
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// GradeStore is the grade persistence used by the services
type GradeStore interface {
	Create(ctx context.Context, grade *models.Grade) error
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	GetAll(ctx context.Context) ([]*models.Grade, error)
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) error
}

// GradesAndScheduleStore is the read-only view the summary is built from.
// FindUserWithDepartment returns apperrors.ErrUserNotFound for unknown ids.
type GradesAndScheduleStore interface {
	FindUserWithDepartment(ctx context.Context, id int64) (*models.User, error)
	ListCoursesEnrolledBy(ctx context.Context, studentID int64) ([]*models.Course, error)
	ListGradesFor(ctx context.Context, studentID int64) (map[int64]float64, error)
}

// RoleValidator checks the role of users referenced by courses and grades
type RoleValidator interface {
	ValidateTeacher(ctx context.Context, userID int64) error
	ValidateStudent(ctx context.Context, userID int64) error
}

// TokenIssuer issues access tokens for authenticated users
type TokenIssuer interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
}

// DocumentStorage stores uploaded profile documents
type DocumentStorage interface {
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)
	DeleteFile(filePath string) error
}
