package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/middleware"
	"github.com/yigit/unirecords/internal/pkg/helpers"
)

// ProfileDocumentField is the multipart field carrying a user's profile document
const ProfileDocumentField = "profileDocument"

// UserController handles user management operations
type UserController struct {
	userService UserService
}

// NewUserController creates a new UserController
func NewUserController(userService UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers retrieves a page of users
// @Summary List users
// @Description Lists users with their department, one page at a time
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size (max 100)" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse} "Users retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	users, pagination, err := c.userService.ListUsers(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.UserListResponse{
		Users:          make([]dto.UserResponse, 0, len(users)),
		PaginationInfo: pagination,
	}
	for _, user := range users {
		resp.Users = append(resp.Users, dto.FromUser(user))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetUserByID retrieves a user by ID
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user")
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromUser(user)))
}

// CreateUser creates a user
// @Summary Create user
// @Description Creates a user from a multipart form. The optional profile document must be an image.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param role formData string true "Student or Teacher"
// @Param departmentId formData int false "Department ID"
// @Param profileDocument formData file false "Profile document (image)"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or file type"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Email is already registered."
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	document, err := optionalFormFile(ctx, ProfileDocumentField)
	if err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), &req, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromUser(user)))
}

// UpdateUser updates a user
// @Summary Update user
// @Description Updates a user from a multipart form. The existing document is kept unless a new one is uploaded.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string false "New password"
// @Param role formData string true "Student or Teacher"
// @Param departmentId formData int false "Department ID"
// @Param profileDocument formData file false "Profile document (image)"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, file type or ID mismatch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User or department not found"
// @Failure 409 {object} dto.ErrorResponse "Email is already registered."
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user")
	if !ok {
		return
	}

	var req dto.UserRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	document, err := optionalFormFile(ctx, ProfileDocumentField)
	if err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), id, &req, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromUser(user)))
}

// DeleteUser deletes a user
// @Summary Delete user
// @Description Deletes a user, their grades and their stored profile document
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "User deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
