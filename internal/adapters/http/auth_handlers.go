package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/openlearn/backend/internal/auth"
	"github.com/openlearn/backend/internal/domain"
	"github.com/openlearn/backend/internal/store"
)

type AuthController struct {
	db  *store.Postgres
	jwt *auth.JWT
}

func (ctl *AuthController) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := auth.ValidateRegister(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := domain.NewUser(req.Username, req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	user.PasswordHash = hash

	if err := ctl.db.CreateUser(c.Request.Context(), user); err != nil {
		storeError(c, err)
		return
	}
	log.Info().Str("module", "adapters.http").Str("username", user.Username).Msg("user registered")

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := auth.ValidateLogin(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.db.GetUserByLogin(c.Request.Context(), req.UsernameOrEmail)
	if err != nil || !auth.ComparePassword(req.Password, user.PasswordHash) {
		// Same answer for unknown user and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := ctl.jwt.Sign(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (ctl *AuthController) Me(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	user, err := ctl.db.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
