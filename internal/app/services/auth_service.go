package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
)

// Session is the result of a successful login
type Session struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// AuthService handles login, registration and user lookups
type AuthService struct {
	userRepo       UserStore
	departmentRepo DepartmentStore
	storage        DocumentStorage
	tokens         TokenIssuer
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserStore,
	departmentRepo DepartmentStore,
	storage DocumentStorage,
	tokens TokenIssuer,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		storage:        storage,
		tokens:         tokens,
		logger:         logger,
	}
}

// Login authenticates a user by email, ignoring case, and password
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Info().Str("email", email).Msg("Login attempt for unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.Info().Int64("userID", user.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return &Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Register creates a user from the registration form. The role defaults to
// Student and the optional upload becomes the profile document.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, document *multipart.FileHeader) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	role := models.RoleStudent
	if req.Role != "" {
		role = models.Role(req.Role)
	}
	if !role.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Role must be Student or Teacher")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userRepo.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if err := ensureDepartment(ctx, s.departmentRepo, req.DepartmentID); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		Password:     hashed,
		Role:         role,
		DepartmentID: req.DepartmentID,
	}

	stored, err := storeDocument(s.storage, document)
	if err != nil {
		return nil, err
	}
	user.ProfileDocument = stored

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stored != nil {
			if delErr := s.storage.DeleteFile(*stored); delErr != nil {
				s.logger.Warn().Err(delErr).Str("path", *stored).Msg("Failed to remove orphaned profile document")
			}
		}
		return nil, fmt.Errorf("error registering user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// LookupByEmail finds a user by email, ignoring case
func (s *AuthService) LookupByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetRegisteredUser retrieves a registered user with their department
func (s *AuthService) GetRegisteredUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindUserWithDepartment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// ListRegisteredUsers returns every user with their department
func (s *AuthService) ListRegisteredUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	if len(users) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No users found.")
	}
	return users, nil
}
