package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/backend/internal/domain"
	"github.com/openlearn/backend/internal/store"
)

type CourseController struct {
	db *store.Postgres
}

func (ctl *CourseController) List(c *gin.Context) {
	courses, err := ctl.db.ListCourses(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (ctl *CourseController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	course, err := ctl.db.GetCourse(c.Request.Context(), domain.CourseID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (ctl *CourseController) GetByName(c *gin.Context) {
	course, err := ctl.db.GetCourseByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (ctl *CourseController) EnrollmentCount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	n, err := ctl.db.CountCourseEnrollments(c.Request.Context(), domain.CourseID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courseId": id, "enrollmentCount": n})
}

func (ctl *CourseController) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	course := domain.Course{Name: req.Name, Description: req.Description}
	if err := ctl.db.CreateCourse(c.Request.Context(), &course); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (ctl *CourseController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	course := domain.Course{ID: domain.CourseID(id), Name: req.Name, Description: req.Description}
	if err := ctl.db.UpdateCourse(c.Request.Context(), &course); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (ctl *CourseController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.db.DeleteCourse(c.Request.Context(), domain.CourseID(id)); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type pathRequest struct {
	Level         string `json:"level" binding:"required"`
	Points        int    `json:"points" binding:"required"`
	DurationWeeks int    `json:"durationWeeks" binding:"required"`
	Overview      string `json:"overview"`
}

func (ctl *CourseController) ListPaths(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	paths, err := ctl.db.ListLearningPaths(c.Request.Context(), domain.CourseID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, paths)
}

func (ctl *CourseController) CreatePath(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req pathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	// Parent must exist; a path referencing a missing course is a 404.
	if _, err := ctl.db.GetCourse(c.Request.Context(), domain.CourseID(id)); err != nil {
		storeError(c, err)
		return
	}
	lp := domain.LearningPath{
		CourseID:      domain.CourseID(id),
		Level:         req.Level,
		Points:        req.Points,
		DurationWeeks: req.DurationWeeks,
		Overview:      req.Overview,
	}
	if err := ctl.db.CreateLearningPath(c.Request.Context(), &lp); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lp)
}

func (ctl *CourseController) UpdatePath(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	id, ok := pathID(c, "pathId")
	if !ok {
		return
	}
	var req pathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	lp := domain.LearningPath{
		ID:            domain.PathID(id),
		CourseID:      domain.CourseID(courseID),
		Level:         req.Level,
		Points:        req.Points,
		DurationWeeks: req.DurationWeeks,
		Overview:      req.Overview,
	}
	if err := ctl.db.UpdateLearningPath(c.Request.Context(), &lp); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lp)
}

func (ctl *CourseController) DeletePath(c *gin.Context) {
	id, ok := pathID(c, "pathId")
	if !ok {
		return
	}
	if err := ctl.db.DeleteLearningPath(c.Request.Context(), domain.PathID(id)); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type contentRequest struct {
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	ContentURL  string `json:"contentUrl"`
	Points      int    `json:"points"`
	OrderIndex  int    `json:"orderIndex"`
}

func (ctl *CourseController) ListContents(c *gin.Context) {
	id, ok := pathID(c, "pathId")
	if !ok {
		return
	}
	contents, err := ctl.db.ListLearningContents(c.Request.Context(), domain.PathID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, contents)
}

func (ctl *CourseController) CreateContent(c *gin.Context) {
	id, ok := pathID(c, "pathId")
	if !ok {
		return
	}
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if _, err := ctl.db.GetLearningPath(c.Request.Context(), domain.PathID(id)); err != nil {
		storeError(c, err)
		return
	}
	lc := domain.LearningContent{
		PathID:      domain.PathID(id),
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		ContentURL:  req.ContentURL,
		Points:      req.Points,
		OrderIndex:  req.OrderIndex,
	}
	if err := ctl.db.CreateLearningContent(c.Request.Context(), &lc); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lc)
}

func (ctl *CourseController) UpdateContent(c *gin.Context) {
	pid, ok := pathID(c, "pathId")
	if !ok {
		return
	}
	id, ok := pathID(c, "contentId")
	if !ok {
		return
	}
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	lc := domain.LearningContent{
		ID:          domain.ContentID(id),
		PathID:      domain.PathID(pid),
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		ContentURL:  req.ContentURL,
		Points:      req.Points,
		OrderIndex:  req.OrderIndex,
	}
	if err := ctl.db.UpdateLearningContent(c.Request.Context(), &lc); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lc)
}

func (ctl *CourseController) DeleteContent(c *gin.Context) {
	id, ok := pathID(c, "contentId")
	if !ok {
		return
	}
	if err := ctl.db.DeleteLearningContent(c.Request.Context(), domain.ContentID(id)); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
