package dto

// ScheduleTimeLayout renders schedule times as month/day/year with a 12-hour clock
const ScheduleTimeLayout = "01/02/2006 3:04 PM"

// NoGrade is shown for an enrolled course without a recorded grade
const NoGrade = "N/A"

// GradesAndScheduleRequest names the student whose enrollment is summarized
type GradesAndScheduleRequest struct {
	UserID int64 `json:"UserID" binding:"required,gt=0"`
}

// CurrentUserSummary describes the caller shown at the top of the summary.
// DepartmentID is null for a student without a department and Role is null
// for the guest.
type CurrentUserSummary struct {
	UserID          int64   `json:"UserID"`
	FullName        string  `json:"FullName" example:"Guest"`
	Email           string  `json:"Email" example:"guest@example.com"`
	ProfileDocument string  `json:"ProfileDocument" example:"default.jpg"`
	DepartmentID    *int64  `json:"DepartmentID"`
	Role            *string `json:"Role" example:"Student"`
}

// EnrolledCourseSummary is one enrolled course with its teacher's name
type EnrolledCourseSummary struct {
	CourseID    int64  `json:"CourseID"`
	Title       string `json:"Title"`
	TeacherName string `json:"TeacherName"`
}

// CourseGrade is the formatted grade for one enrolled course
type CourseGrade struct {
	Course string `json:"Course"`
	Grade  string `json:"Grade" example:"95.50"`
}

// ScheduleItem is one formatted time block
type ScheduleItem struct {
	Course    string `json:"Course"`
	StartTime string `json:"StartTime" example:"10/18/2026 8:30 AM"`
	EndTime   string `json:"EndTime" example:"10/18/2026 10:30 AM"`
}

// GradesAndScheduleResponse is the combined grades and schedule view
type GradesAndScheduleResponse struct {
	CurrentUser     CurrentUserSummary      `json:"CurrentUser"`
	EnrolledCourses []EnrolledCourseSummary `json:"EnrolledCourses"`
	Grades          []CourseGrade           `json:"Grades"`
	Schedule        []ScheduleItem          `json:"Schedule"`
}
