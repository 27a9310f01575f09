package dto

import "github.com/yigit/unirecords/internal/app/models"

// GradeRequest represents grade creation and update data
type GradeRequest struct {
	ID         int64    `json:"id"`
	StudentID  int64    `json:"studentId" binding:"required,gt=0"`
	CourseID   int64    `json:"courseId" binding:"required,gt=0"`
	GradeValue *float64 `json:"gradeValue" binding:"required,gte=0,lte=100"`
}

// GradeResponse represents a grade with the student and course it belongs to
type GradeResponse struct {
	ID          int64   `json:"id"`
	StudentID   int64   `json:"studentId"`
	StudentName string  `json:"studentName,omitempty"`
	CourseID    int64   `json:"courseId"`
	CourseTitle string  `json:"courseTitle,omitempty"`
	GradeValue  float64 `json:"gradeValue" example:"95.5"`
}

// FromGrade converts a models.Grade to a GradeResponse
func FromGrade(grade *models.Grade) GradeResponse {
	resp := GradeResponse{
		ID:         grade.ID,
		StudentID:  grade.StudentID,
		CourseID:   grade.CourseID,
		GradeValue: grade.Value,
	}
	if grade.Student != nil {
		resp.StudentName = grade.Student.FullName
	}
	if grade.Course != nil {
		resp.CourseTitle = grade.Course.Title
	}
	return resp
}
