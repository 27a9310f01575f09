package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// DefaultProfileDocument is shown when a user has no uploaded profile document
const DefaultProfileDocument = "default.jpg"
