package domain

import "time"

type TeacherID int64

type Teacher struct {
	ID             TeacherID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	BirthDate      time.Time `json:"birthDate"`
	BirthPlace     string    `json:"birthPlace"`
	Qualifications string    `json:"qualifications,omitempty"`
	Subject        string    `json:"subject"`
	CreatedAt      time.Time `json:"createdAt"`
}
