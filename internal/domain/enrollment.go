package domain

import "time"

type EnrollmentID int64

type Enrollment struct {
	ID          EnrollmentID `json:"id"`
	UserID      UserID       `json:"userId"`
	CourseID    CourseID     `json:"courseId"`
	PathID      PathID       `json:"learningPathId"`
	EnrolledAt  time.Time    `json:"enrolledAt"`
	Progress    int          `json:"progress"` // 0-100
	Completed   bool         `json:"completed"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

// UserStats is the per-user aggregate shown on the dashboard.
type UserStats struct {
	UserID           UserID `json:"userId"`
	TotalEnrollments int    `json:"totalEnrollments"`
	Completed        int    `json:"completed"`
	AverageProgress  int    `json:"averageProgress"`
}
