package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/backend/internal/domain"
	"github.com/openlearn/backend/internal/store"
)

type WhiteboardController struct {
	db *store.Postgres
}

func (ctl *WhiteboardController) Save(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		DrawingData string `json:"drawingData" binding:"required"`
		ActionType  string `json:"actionType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx := c.Request.Context()
	if _, err := ctl.db.GetSeminar(ctx, domain.SeminarID(id)); err != nil {
		storeError(c, err)
		return
	}

	drawnBy := ""
	if claims := currentClaims(c); claims != nil {
		drawnBy = claims.Username
	}
	d := domain.Drawing{
		SeminarID:   domain.SeminarID(id),
		DrawingData: req.DrawingData,
		DrawnBy:     drawnBy,
		ActionType:  req.ActionType,
	}
	if err := ctl.db.CreateDrawing(ctx, &d); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (ctl *WhiteboardController) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	drawings, err := ctl.db.ListDrawings(c.Request.Context(), domain.SeminarID(id))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, drawings)
}

func (ctl *WhiteboardController) Clear(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.db.ClearDrawings(c.Request.Context(), domain.SeminarID(id)); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "whiteboard cleared"})
}
