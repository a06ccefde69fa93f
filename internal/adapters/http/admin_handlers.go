package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/backend/internal/live"
	"github.com/openlearn/backend/internal/store"
)

type AdminController struct {
	db   *store.Postgres
	live *live.Service
}

func (ctl *AdminController) Statistics(c *gin.Context) {
	stats, err := ctl.db.GetStatistics(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ctl *AdminController) LiveRooms(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.live.Registry().Rooms())
}
