package domain

// Role is the identity a participant announces when joining a live seminar.
type Role string

const (
	RoleInstructor Role = "INSTRUCTOR"
	RoleStudent    Role = "STUDENT"
)
