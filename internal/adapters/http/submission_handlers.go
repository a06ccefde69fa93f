package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/backend/internal/domain"
	"github.com/openlearn/backend/internal/store"
)

type SubmissionController struct {
	db *store.Postgres
}

func (ctl *SubmissionController) Create(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Title          string `json:"title" binding:"required"`
		Description    string `json:"description"`
		SubmissionType string `json:"submissionType" binding:"required"`
		ContentURL     string `json:"contentUrl"`
		FileName       string `json:"fileName"`
		FileSize       int64  `json:"fileSize"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	subType, err := domain.ParseSubmissionType(req.SubmissionType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := currentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	ctx := c.Request.Context()
	if _, err := ctl.db.GetSeminar(ctx, domain.SeminarID(id)); err != nil {
		storeError(c, err)
		return
	}

	s := domain.Submission{
		SeminarID:      domain.SeminarID(id),
		StudentID:      claims.UserID,
		StudentName:    claims.Username,
		Title:          req.Title,
		Description:    req.Description,
		SubmissionType: subType,
		ContentURL:     req.ContentURL,
		FileName:       req.FileName,
		FileSize:       req.FileSize,
	}
	if err := ctl.db.CreateSubmission(ctx, &s); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (ctl *SubmissionController) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	subs, err := ctl.db.ListSubmissions(c.Request.Context(), domain.SeminarID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (ctl *SubmissionController) Delete(c *gin.Context) {
	id, ok := pathID(c, "submissionId")
	if !ok {
		return
	}
	if err := ctl.db.DeleteSubmission(c.Request.Context(), domain.SubmissionID(id)); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *SubmissionController) Grade(c *gin.Context) {
	id, ok := pathID(c, "submissionId")
	if !ok {
		return
	}
	var req struct {
		Feedback string `json:"feedback"`
		Grade    *int   `json:"grade" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Grade == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if *req.Grade < 0 || *req.Grade > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grade must be between 0 and 100"})
		return
	}
	s, err := ctl.db.GradeSubmission(c.Request.Context(), domain.SubmissionID(id), req.Feedback, *req.Grade)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
