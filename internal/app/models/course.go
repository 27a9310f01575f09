package models

// Course represents a course, optionally taught by a teacher and owned by a department.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	TeacherID    *int64 `json:"teacherId,omitempty" db:"teacher_id"`       // Nullable, cleared when the teacher is deleted
	DepartmentID *int64 `json:"departmentId,omitempty" db:"department_id"` // Nullable, cleared when the department is deleted

	// Relations (populated when needed)
	Teacher    *User       `json:"teacher,omitempty"`
	Department *Department `json:"department,omitempty"`
}

// TeacherName returns the teacher's full name, or an empty string when no teacher is assigned
func (c *Course) TeacherName() string {
	if c == nil || c.Teacher == nil {
		return ""
	}
	return c.Teacher.FullName
}
