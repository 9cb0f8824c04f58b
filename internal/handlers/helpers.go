package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"constructax/internal/middlewares"
)

// currentUserID pulls the authenticated user ID set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middlewares.UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// pathUUID parses a path parameter as a UUID.
func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
