package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginQuery carries credentials passed on the query string
type LoginQuery struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginResponse is returned by a successful JSON login
type LoginResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email" example:"jane@contoso.edu"`
	FullName string `json:"fullName" example:"Jane Doe"`
}

// TokenResponse carries only the issued access token
type TokenResponse struct {
	Token string `json:"token"`
}

// UserLookupResponse is the public view of a user found by email
type UserLookupResponse struct {
	UserID       int64  `json:"userId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Role         string `json:"role" example:"Student"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// RegisterRequest is the multipart form submitted on registration.
// The optional profile document arrives in the "fileUpload" form file.
type RegisterRequest struct {
	FullName        string `form:"fullName" binding:"required,notblank,max=255"`
	Email           string `form:"email" binding:"required,email,max=255"`
	Password        string `form:"password" binding:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" binding:"required"`
	Role            string `form:"role" binding:"omitempty,oneof=Student Teacher"`
	DepartmentID    *int64 `form:"departmentId" binding:"omitempty,gt=0"`
}

// RegisteredUserResponse is the detail view of a registered user
type RegisteredUserResponse struct {
	UserID          int64  `json:"userId"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	DepartmentID    *int64 `json:"departmentId,omitempty"`
	ProfileDocument string `json:"profileDocument"`
}

// RegisteredUserSummary is one row of the registered-user listing
type RegisteredUserSummary struct {
	UserID         int64  `json:"userId"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	DepartmentName string `json:"departmentName" example:"No Department"`
}
