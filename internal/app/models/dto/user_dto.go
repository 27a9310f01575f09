package dto

import "github.com/yigit/unirecords/internal/app/models"

// UserRequest is the multipart form used to create or update a user.
// Password is required on create and optional on update.
type UserRequest struct {
	ID           int64  `form:"id"`
	FullName     string `form:"fullName" binding:"required,notblank,max=255"`
	Email        string `form:"email" binding:"required,email,max=255"`
	Password     string `form:"password" binding:"omitempty,min=8"`
	Role         string `form:"role" binding:"required,oneof=Student Teacher"`
	DepartmentID *int64 `form:"departmentId" binding:"omitempty,gt=0"`
}

// UserResponse represents user information returned by the users API
type UserResponse struct {
	ID              int64  `json:"id"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	DepartmentID    *int64 `json:"departmentId,omitempty"`
	DepartmentName  string `json:"departmentName,omitempty"`
	ProfileDocument string `json:"profileDocument"`
}

// UserListResponse represents a page of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	PaginationInfo
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	resp := UserResponse{
		ID:              user.ID,
		FullName:        user.FullName,
		Email:           user.Email,
		Role:            string(user.Role),
		DepartmentID:    user.DepartmentID,
		ProfileDocument: user.ProfileDocumentOrDefault(),
	}
	if user.Department != nil {
		resp.DepartmentName = user.Department.Name
	}
	return resp
}
