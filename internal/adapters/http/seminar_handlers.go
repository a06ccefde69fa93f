package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/backend/internal/domain"
	"github.com/openlearn/backend/internal/store"
)

type SeminarController struct {
	db *store.Postgres
}

type seminarRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	InstructorName  string `json:"instructorName" binding:"required"`
	StartTime       string `json:"startTime" binding:"required"` // RFC 3339
	EndTime         string `json:"endTime" binding:"required"`
	MaxParticipants int    `json:"maxParticipants"`
	MeetingURL      string `json:"meetingUrl"`
}

func (r seminarRequest) toDomain() (domain.Seminar, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return domain.Seminar{}, err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return domain.Seminar{}, err
	}
	if !end.After(start) {
		return domain.Seminar{}, errors.New("endTime must be after startTime")
	}
	return domain.Seminar{
		Title:           r.Title,
		Description:     r.Description,
		InstructorName:  r.InstructorName,
		StartTime:       start,
		EndTime:         end,
		MaxParticipants: r.MaxParticipants,
		MeetingURL:      r.MeetingURL,
	}, nil
}

func (ctl *SeminarController) List(c *gin.Context) {
	seminars, err := ctl.db.ListSeminars(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seminars)
}

func (ctl *SeminarController) Upcoming(c *gin.Context) {
	seminars, err := ctl.db.ListUpcomingSeminars(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seminars)
}

func (ctl *SeminarController) Live(c *gin.Context) {
	seminars, err := ctl.db.ListLiveSeminars(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seminars)
}

func (ctl *SeminarController) Today(c *gin.Context) {
	seminars, err := ctl.db.ListTodaySeminars(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seminars)
}

func (ctl *SeminarController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := ctl.db.GetSeminar(c.Request.Context(), domain.SeminarID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (ctl *SeminarController) Create(c *gin.Context) {
	var req seminarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	s, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ctl.db.CreateSeminar(c.Request.Context(), &s); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (ctl *SeminarController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req seminarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	s, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.ID = domain.SeminarID(id)
	if err := ctl.db.UpdateSeminar(c.Request.Context(), &s); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (ctl *SeminarController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	status, err := domain.ParseSeminarStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := ctl.db.UpdateSeminarStatus(c.Request.Context(), domain.SeminarID(id), status)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (ctl *SeminarController) Join(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := ctl.db.JoinSeminar(c.Request.Context(), domain.SeminarID(id))
	if errors.Is(err, store.ErrNotFound) {
		// Either the seminar is gone or it is full; disambiguate for the caller.
		if _, getErr := ctl.db.GetSeminar(c.Request.Context(), domain.SeminarID(id)); getErr == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "seminar is full"})
			return
		}
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (ctl *SeminarController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.db.DeleteSeminar(c.Request.Context(), domain.SeminarID(id)); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
