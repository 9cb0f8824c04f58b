package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructax/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.AccessTokenSecret = []byte("middleware-test-secret")
}

func protectedRouter() *gin.Engine {
	router := gin.New()
	router.GET("/protected", Authenticate, func(c *gin.Context) {
		id, _ := c.Get(UserIDKey)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	return router
}

func request(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	w := request(t, protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	w := request(t, protectedRouter(), "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	w := request(t, protectedRouter(), "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.New(), -time.Minute, utils.AccessTokenSecret)
	require.NoError(t, err)

	w := request(t, protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateJWT(userID, time.Minute, utils.AccessTokenSecret)
	require.NoError(t, err)

	w := request(t, protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}
