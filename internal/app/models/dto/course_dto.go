package dto

import "github.com/yigit/unirecords/internal/app/models"

// CourseRequest represents course creation and update data
type CourseRequest struct {
	ID           int64  `json:"id"`
	Title        string `json:"title" binding:"required,notblank,max=255"`
	TeacherID    *int64 `json:"teacherId" binding:"omitempty,gt=0"`
	DepartmentID *int64 `json:"departmentId" binding:"omitempty,gt=0"`
}

// CourseResponse represents a course with its teacher and department names
type CourseResponse struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	TeacherID      *int64 `json:"teacherId,omitempty"`
	TeacherName    string `json:"teacherName,omitempty"`
	DepartmentID   *int64 `json:"departmentId,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:           course.ID,
		Title:        course.Title,
		TeacherID:    course.TeacherID,
		TeacherName:  course.TeacherName(),
		DepartmentID: course.DepartmentID,
	}
	if course.Department != nil {
		resp.DepartmentName = course.Department.Name
	}
	return resp
}
