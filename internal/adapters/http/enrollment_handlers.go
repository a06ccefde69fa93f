package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/openlearn/backend/internal/domain"
	"github.com/openlearn/backend/internal/store"
)

type EnrollmentController struct {
	db *store.Postgres
}

type enrollmentResponse struct {
	ID             domain.EnrollmentID `json:"id"`
	UserID         domain.UserID       `json:"userId"`
	CourseID       domain.CourseID     `json:"courseId"`
	LearningPathID domain.PathID       `json:"learningPathId"`
	EnrolledAt     string              `json:"enrolledAt"`
	Progress       int                 `json:"progress"`
	Completed      bool                `json:"completed"`
}

func toEnrollmentResponse(e domain.Enrollment) enrollmentResponse {
	return enrollmentResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		CourseID:       e.CourseID,
		LearningPathID: e.PathID,
		EnrolledAt:     e.EnrolledAt.Format("2006-01-02T15:04:05Z07:00"),
		Progress:       e.Progress,
		Completed:      e.Completed,
	}
}

func (ctl *EnrollmentController) List(c *gin.Context) {
	enrollments, err := ctl.db.ListEnrollments(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(enrollments, func(e domain.Enrollment, _ int) enrollmentResponse {
		return toEnrollmentResponse(e)
	}))
}

func (ctl *EnrollmentController) Enroll(c *gin.Context) {
	var req struct {
		UserID         int64 `json:"userId" binding:"required"`
		CourseID       int64 `json:"courseId" binding:"required"`
		LearningPathID int64 `json:"learningPathId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()
	// Referential checks up front give the caller a 404 instead of an FK error.
	if _, err := ctl.db.GetUser(ctx, domain.UserID(req.UserID)); err != nil {
		storeError(c, err)
		return
	}
	if _, err := ctl.db.GetCourse(ctx, domain.CourseID(req.CourseID)); err != nil {
		storeError(c, err)
		return
	}
	if _, err := ctl.db.GetLearningPath(ctx, domain.PathID(req.LearningPathID)); err != nil {
		storeError(c, err)
		return
	}

	e := domain.Enrollment{
		UserID:   domain.UserID(req.UserID),
		CourseID: domain.CourseID(req.CourseID),
		PathID:   domain.PathID(req.LearningPathID),
	}
	if err := ctl.db.CreateEnrollment(ctx, &e); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEnrollmentResponse(e))
}

func (ctl *EnrollmentController) ListForUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	enrollments, err := ctl.db.ListUserEnrollments(c.Request.Context(), domain.UserID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(enrollments, func(e domain.Enrollment, _ int) enrollmentResponse {
		return toEnrollmentResponse(e)
	}))
}

func (ctl *EnrollmentController) UserStats(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	stats, err := ctl.db.GetUserStats(c.Request.Context(), domain.UserID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ctl *EnrollmentController) ListForCourse(c *gin.Context) {
	id, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	enrollments, err := ctl.db.ListCourseEnrollments(c.Request.Context(), domain.CourseID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(enrollments, func(e domain.Enrollment, _ int) enrollmentResponse {
		return toEnrollmentResponse(e)
	}))
}

func (ctl *EnrollmentController) UpdateProgress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Progress *int `json:"progress" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Progress == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	e, err := ctl.db.UpdateEnrollmentProgress(c.Request.Context(), domain.EnrollmentID(id), *req.Progress)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEnrollmentResponse(e))
}

func (ctl *EnrollmentController) Unenroll(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.db.DeleteEnrollment(c.Request.Context(), domain.EnrollmentID(id)); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unenrolled"})
}
