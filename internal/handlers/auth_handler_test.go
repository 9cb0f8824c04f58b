package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructax/internal/middlewares"
	"constructax/internal/responses"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testContext builds a gin context around a JSON request body.
func testContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func authedContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, w := testContext(t, method, target, body)
	c.Set(middlewares.UserIDKey, uuid.New())
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) responses.APIResponse {
	t.Helper()
	var resp responses.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	h := NewAuthHandler(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":    "mason@site.com",
		"password": "12345",
	})
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Please provide your email and password correctly", resp.Message)
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	h := NewAuthHandler(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":    "not-an-email",
		"password": "long enough",
	})
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	h := NewAuthHandler(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "mason@site.com",
	})
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Format", decodeResponse(t, w).Message)
}

func TestRefreshRequiresCookie(t *testing.T) {
	h := NewAuthHandler(nil)

	c, w := testContext(t, http.MethodPost, "/api/v1/auth/refresh", nil)
	h.Refresh(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing refresh token", decodeResponse(t, w).Message)
}
