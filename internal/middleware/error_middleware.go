package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/logger"
)

// errorMapping ties an application error to the HTTP response it produces
type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrUnauthenticated, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrTokenNotFound, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found"},
	{apperrors.ErrInvalidFormat, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token format"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
	{apperrors.ErrDepartmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Department not found"},
	{apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"},
	{apperrors.ErrTeacherNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Teacher not found"},
	{apperrors.ErrGradeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Grade not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email is already registered."},
	{apperrors.ErrPasswordMismatch, http.StatusBadRequest, dto.ErrorCodePasswordMismatch, "Password and confirmation password do not match."},
	{apperrors.ErrIDMismatch, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "ID mismatch"},
	{apperrors.ErrInvalidTeacher, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Assigned user is not a teacher"},
	{apperrors.ErrInvalidStudent, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Graded user is not a student"},
	{apperrors.ErrGradeOutOfRange, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Grade value must be between 0 and 100"},
	{apperrors.ErrInvalidFile, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Only image files are allowed"},
	{apperrors.ErrInvalidPassword, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Invalid password"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
}

// --- Central Error Handling ---

// HandleAPIError handles common API errors and returns appropriate responses.
// Unrecognised errors, including persistence failures, become a generic 500
// so that internal detail never reaches the client.
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			detail := dto.NewErrorDetail(m.code, m.message)
			var custom *apperrors.CustomError
			if errors.As(err, &custom) && custom.Message != "" && m.status < http.StatusInternalServerError {
				detail = detail.WithDetails(custom.Message)
			}
			c.AbortWithStatusJSON(m.status, dto.NewErrorResponse(detail))
			return
		}
	}

	logger.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Unhandled error")
	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred.").
		WithSeverity(dto.ErrorSeverityCritical)
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
}

// RespondValidationError writes a 400 response for a request binding failure
func RespondValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

// RespondInvalidID writes a 400 response for a malformed path identifier
func RespondInvalidID(c *gin.Context, name string) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" ID").
		WithDetails(name + " ID must be a valid number").
		WithField("id")
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
