package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/openlearn/backend/internal/auth"
)

func protectedRouter(jwt *auth.JWT) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(jwt), func(c *gin.Context) {
		claims := currentClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return r
}

func Test_AuthMiddleware_Rejects_Missing_Token(t *testing.T) {
	is := require.New(t)
	r := protectedRouter(auth.NewJWT("s3cret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	is.Equal(http.StatusUnauthorized, w.Code)
}

func Test_AuthMiddleware_Rejects_Bad_Token(t *testing.T) {
	is := require.New(t)
	r := protectedRouter(auth.NewJWT("s3cret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	is.Equal(http.StatusUnauthorized, w.Code)
}

func Test_AuthMiddleware_Rejects_Token_With_Wrong_Secret(t *testing.T) {
	is := require.New(t)
	other := auth.NewJWT("another-secret", time.Hour)
	token, err := other.Sign(7, "mallory")
	is.NoError(err)

	r := protectedRouter(auth.NewJWT("s3cret", time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	is.Equal(http.StatusUnauthorized, w.Code)
}

func Test_AuthMiddleware_Passes_Claims_Through(t *testing.T) {
	is := require.New(t)
	jwt := auth.NewJWT("s3cret", time.Hour)
	token, err := jwt.Sign(42, "alice")
	is.NoError(err)

	r := protectedRouter(jwt)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	is.Equal(http.StatusOK, w.Code)
	is.JSONEq(`{"username":"alice"}`, w.Body.String())
}

func Test_PathID_Rejects_Garbage(t *testing.T) {
	is := require.New(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/things/:id", func(c *gin.Context) {
		if id, ok := pathID(c, "id"); ok {
			c.JSON(http.StatusOK, gin.H{"id": id})
		}
	})

	for _, bad := range []string{"abc", "0", "-3", "1.5"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/things/"+bad, nil)
		r.ServeHTTP(w, req)
		is.Equal(http.StatusBadRequest, w.Code, "id %q", bad)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/things/12", nil)
	r.ServeHTTP(w, req)
	is.Equal(http.StatusOK, w.Code)
}
