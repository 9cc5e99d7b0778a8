package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-board-api/internal/response"
)

// currentUserID extracts the authenticated user ID set by the auth
// middleware. Sends 401 and returns false when it is missing.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a UUID path parameter. Sends 400 and returns false
// when it is malformed.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
