package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/middleware"
)

// NoDepartment is listed for users without a department
const NoDepartment = "No Department"

// AuthController handles login, registration and user lookups
type AuthController struct {
	authService AuthService
	cookieName  string
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController. cookieName is the cookie
// a JSON login stores the access token in.
func NewAuthController(authService AuthService, cookieName string, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookieName:  cookieName,
		logger:      logger,
	}
}

// Login authenticates a user and issues an access token
// @Summary Log in
// @Description Authenticates with email and password. The token is returned and also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /userlogin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	session, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(c.cookieName, session.Token, maxAge, "/", "", ctx.Request.TLS != nil, true)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:    session.Token,
		Email:    session.User.Email,
		FullName: session.User.FullName,
	})
}

// LoginWithQuery authenticates with credentials passed on the query string
// @Summary Log in with query parameters
// @Description Authenticates with email and password query parameters and returns a token
// @Tags auth
// @Produce json
// @Param email query string true "Email"
// @Param password query string true "Password"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Missing credentials"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /userlogin/login [get]
func (c *AuthController) LoginWithQuery(ctx *gin.Context) {
	var query dto.LoginQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	session, err := c.authService.Login(ctx.Request.Context(), query.Email, query.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: session.Token})
}

// LookupByEmail returns the public profile of the user with the given email
// @Summary Look up a user by email
// @Tags auth
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} dto.UserLookupResponse "User found"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /userlogin/{email} [get]
func (c *AuthController) LookupByEmail(ctx *gin.Context) {
	user, err := c.authService.LookupByEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserLookupResponse{
		UserID:       user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		Role:         string(user.Role),
		DepartmentID: user.DepartmentID,
	})
}

// Register creates a user account
// @Summary Register a user
// @Description Registers a user from a multipart form. The role defaults to Student and an optional file becomes the profile document.
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param confirmPassword formData string true "Password confirmation"
// @Param role formData string false "Student or Teacher"
// @Param departmentId formData int false "Department ID"
// @Param fileUpload formData file false "Profile document"
// @Success 200 {object} dto.SuccessResponse "User registered successfully."
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or password mismatch"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Email is already registered."
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /userregister/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	document, err := optionalFormFile(ctx, "fileUpload")
	if err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Debug().Int64("userID", user.ID).Msg("Registration completed")
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User registered successfully."})
}

// GetRegisteredUser returns a registered user by ID
// @Summary Get a registered user
// @Tags auth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.RegisteredUserResponse "User found"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /userregister/get/{id} [get]
func (c *AuthController) GetRegisteredUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user")
	if !ok {
		return
	}

	user, err := c.authService.GetRegisteredUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RegisteredUserResponse{
		UserID:          user.ID,
		FullName:        user.FullName,
		Email:           user.Email,
		Role:            string(user.Role),
		DepartmentID:    user.DepartmentID,
		ProfileDocument: user.ProfileDocumentOrDefault(),
	})
}

// ListRegisteredUsers lists every registered user with their department name
// @Summary List registered users
// @Tags auth
// @Produce json
// @Success 200 {array} dto.RegisteredUserSummary "Users"
// @Failure 404 {object} dto.ErrorResponse "No users found."
// @Router /userregister/getAll [get]
func (c *AuthController) ListRegisteredUsers(ctx *gin.Context) {
	users, err := c.authService.ListRegisteredUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summaries := make([]dto.RegisteredUserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, registeredUserSummary(user))
	}

	ctx.JSON(http.StatusOK, summaries)
}

func registeredUserSummary(user *models.User) dto.RegisteredUserSummary {
	summary := dto.RegisteredUserSummary{
		UserID:         user.ID,
		FullName:       user.FullName,
		Email:          user.Email,
		Role:           string(user.Role),
		DepartmentName: NoDepartment,
	}
	if user.Department != nil {
		summary.DepartmentName = user.Department.Name
	}
	return summary
}
