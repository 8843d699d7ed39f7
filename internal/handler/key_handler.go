package handler

import (
	"net/http"

	"github.com/ComradeCold/pdf-finder-project/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type KeyHandler struct{}

func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// SetKey stores the caller-asserted user key in the session. An empty
// or blank key resets the session to the shared public bucket.
func (h *KeyHandler) SetKey(c *gin.Context) {
	var req struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	key, err := middleware.SetUserKey(sessions.Default(c), req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "key": key})
}
