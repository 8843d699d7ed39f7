package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ComradeCold/pdf-finder-project/internal/repository"

	"github.com/gin-gonic/gin"
)

type ClickHandler struct {
	repo *repository.ClickRepository
}

func NewClickHandler(repo *repository.ClickRepository) *ClickHandler {
	return &ClickHandler{repo: repo}
}

// Record stores one click. Append-only: repeated clicks on the same
// link each produce a row.
func (h *ClickHandler) Record(c *gin.Context) {
	var req struct {
		LinkURL string `json:"link_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.LinkURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing link_url"})
		return
	}
	if err := h.repo.Record(req.LinkURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save click"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "saved": req.LinkURL})
}

// ListRecent returns the newest clicks, for ad-hoc analytics.
func (h *ClickHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	clicks, err := h.repo.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load clicks"})
		return
	}
	out := make([]gin.H, 0, len(clicks))
	for _, click := range clicks {
		out = append(out, gin.H{
			"link_url":   click.LinkURL,
			"click_time": click.ClickTime,
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "clicks": out})
}
