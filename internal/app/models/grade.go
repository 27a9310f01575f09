package models

// Grade links a student to a course with a numeric score between 0 and 100.
type Grade struct {
	ID        int64   `json:"id" db:"id"`
	StudentID int64   `json:"studentId" db:"student_id"`
	CourseID  int64   `json:"courseId" db:"course_id"`
	Value     float64 `json:"gradeValue" db:"grade_value"`

	Student *User   `json:"student,omitempty"`
	Course  *Course `json:"course,omitempty"`
}

// Grade bounds
const (
	MinGradeValue = 0
	MaxGradeValue = 100
)
