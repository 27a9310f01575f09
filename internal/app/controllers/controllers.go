package controllers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/services"
	"github.com/yigit/unirecords/internal/middleware"
	"github.com/yigit/unirecords/internal/pkg/auth"
)

// AuthService is the login and registration surface used by the auth controllers
type AuthService interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Register(ctx context.Context, req *dto.RegisterRequest, document *multipart.FileHeader) (*models.User, error)
	LookupByEmail(ctx context.Context, email string) (*models.User, error)
	GetRegisteredUser(ctx context.Context, id int64) (*models.User, error)
	ListRegisteredUsers(ctx context.Context) ([]*models.User, error)
}

// UserService is the user CRUD surface
type UserService interface {
	CreateUser(ctx context.Context, req *dto.UserRequest, document *multipart.FileHeader) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, page, size int) ([]*models.User, dto.PaginationInfo, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UserRequest, document *multipart.FileHeader) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// DepartmentService is the department CRUD surface
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.Department) error
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
	UpdateDepartment(ctx context.Context, pathID int64, department *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

// CourseService is the course CRUD surface
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, pathID int64, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

// GradeService is the grade CRUD surface
type GradeService interface {
	CreateGrade(ctx context.Context, grade *models.Grade) error
	GetGradeByID(ctx context.Context, id int64) (*models.Grade, error)
	GetAllGrades(ctx context.Context) ([]*models.Grade, error)
	UpdateGrade(ctx context.Context, pathID int64, grade *models.Grade) error
	DeleteGrade(ctx context.Context, id int64) error
}

// GradesAndScheduleService builds the grades and schedule summary
type GradesAndScheduleService interface {
	Get(ctx context.Context, principal *auth.Principal, targetUserID int64) (*dto.GradesAndScheduleResponse, error)
}

// parseIDParam reads the "id" path parameter, writing a 400 when it is not a positive integer
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.RespondInvalidID(ctx, name)
		return 0, false
	}
	return id, true
}

// optionalFormFile returns the uploaded file for field, or nil when none was sent
func optionalFormFile(ctx *gin.Context, field string) (*multipart.FileHeader, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return fileHeader, nil
}
