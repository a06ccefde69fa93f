package domain

import "time"

type (
	CourseID  int64
	PathID    int64
	ContentID int64
)

type Course struct {
	ID          CourseID  `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LearningPath is one difficulty track inside a course.
type LearningPath struct {
	ID            PathID    `json:"id"`
	CourseID      CourseID  `json:"courseId"`
	Level         string    `json:"level"`
	Points        int       `json:"points"`
	DurationWeeks int       `json:"durationWeeks"`
	Overview      string    `json:"overview,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type LearningContent struct {
	ID          ContentID `json:"id"`
	PathID      PathID    `json:"learningPathId"`
	Title       string    `json:"title"`
	Type        string    `json:"type"` // VIDEO, TEXT, PDF, QUIZ
	Description string    `json:"description,omitempty"`
	ContentURL  string    `json:"contentUrl,omitempty"`
	Points      int       `json:"points"`
	OrderIndex  int       `json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
}
