package domain

import (
	"errors"
	"time"
)

type SeminarID int64

type SeminarStatus string

const (
	SeminarScheduled SeminarStatus = "SCHEDULED"
	SeminarLive      SeminarStatus = "LIVE"
	SeminarCompleted SeminarStatus = "COMPLETED"
	SeminarCancelled SeminarStatus = "CANCELLED"
)

var ErrUnknownSeminarStatus = errors.New("unknown seminar status")

func ParseSeminarStatus(s string) (SeminarStatus, error) {
	switch SeminarStatus(s) {
	case SeminarScheduled, SeminarLive, SeminarCompleted, SeminarCancelled:
		return SeminarStatus(s), nil
	}
	return "", ErrUnknownSeminarStatus
}

type Seminar struct {
	ID                  SeminarID     `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description,omitempty"`
	InstructorName      string        `json:"instructorName"`
	StartTime           time.Time     `json:"startTime"`
	EndTime             time.Time     `json:"endTime"`
	MaxParticipants     int           `json:"maxParticipants"`
	CurrentParticipants int           `json:"currentParticipants"`
	MeetingURL          string        `json:"meetingUrl,omitempty"`
	Status              SeminarStatus `json:"status"`
	CreatedAt           time.Time     `json:"createdAt"`
}

type SeminarFileID int64

type SeminarFile struct {
	ID               SeminarFileID `json:"id"`
	SeminarID        SeminarID     `json:"seminarId"`
	FileName         string        `json:"fileName"`
	OriginalFileName string        `json:"originalFileName"`
	FilePath         string        `json:"-"`
	FileType         string        `json:"fileType"` // PDF, VIDEO, IMAGE, DOCUMENT
	FileSize         int64         `json:"fileSize"`
	UploadedBy       string        `json:"uploadedBy,omitempty"`
	Description      string        `json:"description,omitempty"`
	UploadTime       time.Time     `json:"uploadTime"`
}
