package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/backend/internal/domain"
	"github.com/openlearn/backend/internal/store"
)

type TeacherController struct {
	db *store.Postgres
}

type teacherRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	BirthDate      string `json:"birthDate" binding:"required"` // YYYY-MM-DD
	BirthPlace     string `json:"birthPlace" binding:"required"`
	Qualifications string `json:"qualifications"`
	Subject        string `json:"subject" binding:"required"`
}

func (r teacherRequest) toDomain() (domain.Teacher, error) {
	birth, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return domain.Teacher{}, err
	}
	return domain.Teacher{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		BirthDate:      birth,
		BirthPlace:     r.BirthPlace,
		Qualifications: r.Qualifications,
		Subject:        r.Subject,
	}, nil
}

func (ctl *TeacherController) List(c *gin.Context) {
	teachers, err := ctl.db.ListTeachers(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, teachers)
}

func (ctl *TeacherController) Create(c *gin.Context) {
	var req teacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	t, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthDate, want YYYY-MM-DD"})
		return
	}
	if err := ctl.db.CreateTeacher(c.Request.Context(), &t); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (ctl *TeacherController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req teacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	t, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthDate, want YYYY-MM-DD"})
		return
	}
	t.ID = domain.TeacherID(id)
	if err := ctl.db.UpdateTeacher(c.Request.Context(), &t); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (ctl *TeacherController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.db.DeleteTeacher(c.Request.Context(), domain.TeacherID(id)); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
