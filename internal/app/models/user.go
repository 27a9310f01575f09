package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64       `json:"id" db:"id" example:"1"`                                               // Unique identifier for the user
	FullName        string      `json:"fullName" db:"full_name" example:"Jane Doe"`                           // User's full name
	Email           string      `json:"email" db:"email" example:"jane@contoso.edu"`                          // Lowercased email address
	Password        string      `json:"-" db:"password"`                                                      // Hashed password (excluded from JSON)
	Role            Role        `json:"role" db:"role" example:"Student"`                                     // Student or Teacher
	DepartmentID    *int64      `json:"departmentId,omitempty" db:"department_id" example:"2"`                // Nullable department reference
	ProfileDocument *string     `json:"profileDocument,omitempty" db:"profile_document" example:"a1b2.jpg"` // Stored profile document (nullable)
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
	Department      *Department `json:"department,omitempty"` // Relation, no db tag
}

// IsStudent reports whether the user holds the Student role
func (u *User) IsStudent() bool {
	return u != nil && u.Role == RoleStudent
}

// ProfileDocumentOrDefault returns the stored profile document or the default placeholder
func (u *User) ProfileDocumentOrDefault() string {
	if u == nil || u.ProfileDocument == nil || *u.ProfileDocument == "" {
		return DefaultProfileDocument
	}
	return *u.ProfileDocument
}
