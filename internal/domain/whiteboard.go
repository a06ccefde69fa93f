package domain

import "time"

type DrawingID int64

// Drawing is one persisted whiteboard action for a seminar.
type Drawing struct {
	ID          DrawingID `json:"id"`
	SeminarID   SeminarID `json:"seminarId"`
	DrawingData string    `json:"drawingData"` // serialized canvas JSON
	DrawnBy     string    `json:"drawnBy,omitempty"`
	ActionType  string    `json:"actionType,omitempty"` // DRAW, ERASE, CLEAR
	DrawTime    time.Time `json:"drawTime"`
}
