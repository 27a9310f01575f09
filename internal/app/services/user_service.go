package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
	"github.com/yigit/unirecords/internal/pkg/filestorage"
	"github.com/yigit/unirecords/internal/pkg/helpers"
)

// UserService handles user CRUD and profile documents
type UserService struct {
	userRepo       UserStore
	departmentRepo DepartmentStore
	storage        DocumentStorage
	logger         zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, departmentRepo DepartmentStore, storage DocumentStorage, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

// CreateUser creates a user from the submitted form. The profile document is optional.
func (s *UserService) CreateUser(ctx context.Context, req *dto.UserRequest, document *multipart.FileHeader) (*models.User, error) {
	if req.Password == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Password is required")
	}
	if err := filestorage.ValidateImage(document); err != nil {
		return nil, err
	}
	if err := s.ensureEmailAvailable(ctx, req.Email, 0); err != nil {
		return nil, err
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
		Email:        req.Email,
		Password:     hashed,
		Role:         models.Role(req.Role),
		DepartmentID: req.DepartmentID,
	}

	stored, err := storeDocument(s.storage, document)
	if err != nil {
		return nil, err
	}
	user.ProfileDocument = stored

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.discardDocument(stored)
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User created")
	return user, nil
}

// GetUser retrieves a user with their department
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindUserWithDepartment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// ListUsers returns one page of users and the pagination info for it
func (s *UserService) ListUsers(ctx context.Context, page, size int) ([]*models.User, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing users: %w", err)
	}

	return users, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateUser updates a user. The stored document is kept unless a new one is
// uploaded, and the password is kept unless a new one is given.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *dto.UserRequest, document *multipart.FileHeader) (*models.User, error) {
	if req.ID != 0 && req.ID != id {
		return nil, apperrors.ErrIDMismatch
	}
	if err := filestorage.ValidateImage(document); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if err := s.ensureEmailAvailable(ctx, req.Email, id); err != nil {
		return nil, err
	}
	if err := ensureDepartment(ctx, s.departmentRepo, req.DepartmentID); err != nil {
		return nil, err
	}

	user.FullName = strings.TrimSpace(req.FullName)
	user.Email = req.Email
	user.Role = models.Role(req.Role)
	user.DepartmentID = req.DepartmentID
	user.Password = ""
	if req.Password != "" {
		if user.Password, err = auth.HashPassword(req.Password); err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
	}

	previous := user.ProfileDocument
	stored, err := storeDocument(s.storage, document)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		user.ProfileDocument = stored
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.discardDocument(stored)
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	if stored != nil {
		s.discardDocument(previous)
	}
	return user, nil
}

// DeleteUser deletes a user and their stored profile document
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	s.discardDocument(user.ProfileDocument)
	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}

func (s *UserService) ensureEmailAvailable(ctx context.Context, email string, excludeID int64) error {
	exists, err := s.userRepo.EmailExists(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}
	return nil
}

// discardDocument removes a stored document; failures are only logged
func (s *UserService) discardDocument(path *string) {
	if path == nil || *path == "" || *path == models.DefaultProfileDocument {
		return
	}
	if err := s.storage.DeleteFile(*path); err != nil {
		s.logger.Warn().Err(err).Str("path", *path).Msg("Failed to remove profile document")
	}
}

// ensureDepartment returns ErrDepartmentNotFound when id names no department
func ensureDepartment(ctx context.Context, departments DepartmentStore, id *int64) error {
	if id == nil {
		return nil
	}
	exists, err := departments.Exists(ctx, *id)
	if err != nil {
		return fmt.Errorf("error checking department: %w", err)
	}
	if !exists {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// storeDocument saves an uploaded profile document, returning nil when none was uploaded
func storeDocument(storage DocumentStorage, document *multipart.FileHeader) (*string, error) {
	if document == nil {
		return nil, nil
	}
	path, err := storage.SaveFileWithPath(document, filestorage.ProfileDir)
	if err != nil {
		return nil, fmt.Errorf("error saving profile document: %w", err)
	}
	return &path, nil
}
