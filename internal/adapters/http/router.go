// Package http wires the REST surface and the live-seminar WebSocket
// endpoint onto a gin engine.
package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/openlearn/backend/internal/auth"
	"github.com/openlearn/backend/internal/config"
	"github.com/openlearn/backend/internal/files"
	"github.com/openlearn/backend/internal/live"
	"github.com/openlearn/backend/internal/store"
)

func SetupRouter(ctx context.Context, cfg *config.Config, db *store.Postgres, blobs *files.Store, liveSvc *live.Service) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	jwt := auth.NewJWT(cfg.Secret, cfg.TokenTTL)
	authRequired := AuthMiddleware(jwt)

	authCtl := &AuthController{db: db, jwt: jwt}
	userCtl := &UserController{db: db}
	teacherCtl := &TeacherController{db: db}
	courseCtl := &CourseController{db: db}
	enrollCtl := &EnrollmentController{db: db}
	seminarCtl := &SeminarController{db: db}
	fileCtl := &SeminarFileController{db: db, blobs: blobs}
	bookCtl := &BookController{db: db, blobs: blobs}
	boardCtl := &WhiteboardController{db: db}
	subCtl := &SubmissionController{db: db}
	adminCtl := &AdminController{db: db, live: liveSvc}

	log.Info().Str("module", "adapters.http").Msg("router setup")

	api := r.Group("/api")

	authGrp := api.Group("/auth")
	authGrp.POST("/register", authCtl.Register)
	authGrp.POST("/login", authCtl.Login)
	authGrp.GET("/me", authRequired, authCtl.Me)

	users := api.Group("/users", authRequired)
	users.GET("", userCtl.List)
	users.GET("/:id", userCtl.Get)
	users.PUT("/:id", userCtl.Update)
	users.DELETE("/:id", userCtl.Delete)

	teachers := api.Group("/teachers")
	teachers.GET("", teacherCtl.List)
	teachers.POST("", authRequired, teacherCtl.Create)
	teachers.PUT("/:id", authRequired, teacherCtl.Update)
	teachers.DELETE("/:id", authRequired, teacherCtl.Delete)

	courses := api.Group("/courses")
	courses.GET("", courseCtl.List)
	courses.GET("/:id", courseCtl.Get)
	courses.GET("/name/:name", courseCtl.GetByName)
	courses.GET("/:id/enrollment-count", courseCtl.EnrollmentCount)
	courses.POST("", authRequired, courseCtl.Create)
	courses.PUT("/:id", authRequired, courseCtl.Update)
	courses.DELETE("/:id", authRequired, courseCtl.Delete)
	courses.GET("/:id/paths", courseCtl.ListPaths)
	courses.POST("/:id/paths", authRequired, courseCtl.CreatePath)
	courses.PUT("/:id/paths/:pathId", authRequired, courseCtl.UpdatePath)
	courses.DELETE("/:id/paths/:pathId", authRequired, courseCtl.DeletePath)
	courses.GET("/:id/paths/:pathId/contents", courseCtl.ListContents)
	courses.POST("/:id/paths/:pathId/contents", authRequired, courseCtl.CreateContent)
	courses.PUT("/:id/paths/:pathId/contents/:contentId", authRequired, courseCtl.UpdateContent)
	courses.DELETE("/:id/paths/:pathId/contents/:contentId", authRequired, courseCtl.DeleteContent)

	enrollments := api.Group("/enrollments", authRequired)
	enrollments.GET("", enrollCtl.List)
	enrollments.POST("", enrollCtl.Enroll)
	enrollments.GET("/user/:userId", enrollCtl.ListForUser)
	enrollments.GET("/user/:userId/stats", enrollCtl.UserStats)
	enrollments.GET("/course/:courseId", enrollCtl.ListForCourse)
	enrollments.PUT("/:id/progress", enrollCtl.UpdateProgress)
	enrollments.DELETE("/:id", enrollCtl.Unenroll)

	seminars := api.Group("/seminars")
	seminars.GET("", seminarCtl.List)
	seminars.GET("/upcoming", seminarCtl.Upcoming)
	seminars.GET("/live", seminarCtl.Live)
	seminars.GET("/today", seminarCtl.Today)
	seminars.GET("/:id", seminarCtl.Get)
	seminars.POST("", authRequired, seminarCtl.Create)
	seminars.PUT("/:id", authRequired, seminarCtl.Update)
	seminars.PUT("/:id/status", authRequired, seminarCtl.UpdateStatus)
	seminars.POST("/:id/join", authRequired, seminarCtl.Join)
	seminars.DELETE("/:id", authRequired, seminarCtl.Delete)

	seminars.POST("/:id/files/upload", authRequired, fileCtl.Upload)
	seminars.GET("/:id/files", fileCtl.List)
	seminars.GET("/:id/files/:fileId/download", fileCtl.Download)
	seminars.DELETE("/:id/files/:fileId", authRequired, fileCtl.Delete)

	seminars.POST("/:id/whiteboard", authRequired, boardCtl.Save)
	seminars.GET("/:id/whiteboard", boardCtl.List)
	seminars.DELETE("/:id/whiteboard", authRequired, boardCtl.Clear)

	seminars.POST("/:id/submissions", authRequired, subCtl.Create)
	seminars.GET("/:id/submissions", subCtl.List)
	seminars.PUT("/:id/submissions/:submissionId/grade", authRequired, subCtl.Grade)
	seminars.DELETE("/:id/submissions/:submissionId", authRequired, subCtl.Delete)

	books := api.Group("/books")
	books.GET("", bookCtl.List)
	books.GET("/:id", bookCtl.Get)
	books.POST("", authRequired, bookCtl.Create)
	books.PUT("/:id", authRequired, bookCtl.Update)
	books.DELETE("/:id", authRequired, bookCtl.Delete)
	books.GET("/:id/download", bookCtl.Download)

	admin := api.Group("/admin", authRequired)
	admin.GET("/statistics", adminCtl.Statistics)
	admin.GET("/live-rooms", adminCtl.LiveRooms)

	wsCtl := live.NewWSController(liveSvc, cfg.ReadLimit, cfg.PingPeriod)
	r.GET("/ws/live/:seminarID", func(c *gin.Context) {
		wsCtl.Handle(ctx, c)
	})

	return r
}
