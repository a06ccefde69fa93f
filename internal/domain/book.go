package domain

import "time"

type BookID int64

type Book struct {
	ID               BookID    `json:"id"`
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	Description      string    `json:"description,omitempty"`
	CourseID         CourseID  `json:"courseId,omitempty"`
	FilePath         string    `json:"-"`
	OriginalFileName string    `json:"originalFileName,omitempty"`
	FileType         string    `json:"fileType,omitempty"`
	FileSize         int64     `json:"fileSize,omitempty"`
	Icon             string    `json:"icon,omitempty"`
	UploadTime       time.Time `json:"uploadTime"`
}
