package domain

import (
	"errors"
	"time"
)

type SubmissionID int64

type SubmissionType string

const (
	SubmissionLink     SubmissionType = "LINK"
	SubmissionImage    SubmissionType = "IMAGE"
	SubmissionVideo    SubmissionType = "VIDEO"
	SubmissionDocument SubmissionType = "DOCUMENT"
)

var ErrUnknownSubmissionType = errors.New("unknown submission type")

func ParseSubmissionType(s string) (SubmissionType, error) {
	switch SubmissionType(s) {
	case SubmissionLink, SubmissionImage, SubmissionVideo, SubmissionDocument:
		return SubmissionType(s), nil
	}
	return "", ErrUnknownSubmissionType
}

type Submission struct {
	ID             SubmissionID   `json:"id"`
	SeminarID      SeminarID      `json:"seminarId"`
	StudentID      UserID         `json:"studentId"`
	StudentName    string         `json:"studentName"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	SubmissionType SubmissionType `json:"submissionType"`
	ContentURL     string         `json:"contentUrl,omitempty"`
	FileName       string         `json:"fileName,omitempty"`
	FileSize       int64          `json:"fileSize,omitempty"`
	SubmissionTime time.Time      `json:"submissionTime"`
	Feedback       string         `json:"instructorFeedback,omitempty"`
	Grade          *int           `json:"grade,omitempty"` // 0-100
}
