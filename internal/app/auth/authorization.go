package auth

import (
	"context"
	"errors"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/logger"
)

// UserLookup is the user read the authorization checks depend on
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthorizationService checks the roles of users referenced by courses and grades
type AuthorizationService struct {
	userRepo UserLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo UserLookup) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
	}
}

// HasRole reports whether the user exists and holds the given role
func (s *AuthorizationService) HasRole(ctx context.Context, userID int64, role models.Role) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in HasRole")
		return false, err
	}
	return user.Role == role, nil
}

// ValidateTeacher returns nil when the user exists and is a teacher
func (s *AuthorizationService) ValidateTeacher(ctx context.Context, userID int64) error {
	isTeacher, err := s.HasRole(ctx, userID, models.RoleTeacher)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrTeacherNotFound
		}
		return err
	}

	if !isTeacher {
		return apperrors.ErrInvalidTeacher
	}

	return nil
}

// ValidateStudent returns nil when the user exists and is a student
func (s *AuthorizationService) ValidateStudent(ctx context.Context, userID int64) error {
	isStudent, err := s.HasRole(ctx, userID, models.RoleStudent)
	if err != nil {
		return err
	}

	if !isStudent {
		return apperrors.ErrInvalidStudent
	}

	return nil
}
