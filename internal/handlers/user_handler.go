package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"constructax/internal/responses"
	"constructax/internal/services"
)

type UserHandler struct {
	authService *services.AuthService
}

func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "User not found")
		return
	}

	responses.Success(c, http.StatusOK, user, "User retrieved successfully")
}
