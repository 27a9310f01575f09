package dto

import "github.com/yigit/unirecords/internal/app/models"

// DepartmentRequest represents department creation and update data
type DepartmentRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required,notblank,max=255"`
}

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromDepartment converts a models.Department to a DepartmentResponse
func FromDepartment(department *models.Department) DepartmentResponse {
	return DepartmentResponse{ID: department.ID, Name: department.Name}
}
