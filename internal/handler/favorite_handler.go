package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/ComradeCold/pdf-finder-project/internal/middleware"
	"github.com/ComradeCold/pdf-finder-project/internal/repository"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	repo *repository.FavoriteRepository
}

func NewFavoriteHandler(repo *repository.FavoriteRepository) *FavoriteHandler {
	return &FavoriteHandler{repo: repo}
}

// Toggle adds or removes a favorite for the resolved user key. The
// action defaults to "add".
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userKey := middleware.GetUserKey(c)
	var req struct {
		LinkURL string `json:"link_url"`
		Action  string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.LinkURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing link_url"})
		return
	}
	action := req.Action
	if action == "" {
		action = "add"
	}

	var err error
	switch action {
	case "add":
		err = h.repo.Add(userKey, req.LinkURL)
	case "remove":
		err = h.repo.Remove(userKey, req.LinkURL)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action: " + action})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action + " favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "favorited": req.LinkURL, "action": action})
}

// List returns the user's favorites, newest first. A store failure
// degrades to an empty list, same as the page render.
func (h *FavoriteHandler) List(c *gin.Context) {
	userKey := middleware.GetUserKey(c)
	favs, err := h.repo.ListByUserKey(userKey)
	if err != nil {
		log.Printf("[FAVORITES] list failed for key %q: %v", userKey, err)
		favs = nil
	}
	out := make([]gin.H, 0, len(favs))
	for _, f := range favs {
		out = append(out, gin.H{
			"link_url":     f.LinkURL,
			"favorited_at": f.FavoritedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "favorites": out})
}
