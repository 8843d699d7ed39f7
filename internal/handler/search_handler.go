package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/ComradeCold/pdf-finder-project/internal/middleware"
	"github.com/ComradeCold/pdf-finder-project/internal/models"
	"github.com/ComradeCold/pdf-finder-project/internal/service"

	"github.com/gin-gonic/gin"
)

const favoriteTimeLayout = "2006-01-02 15:04"

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// FavoriteView is a favorite formatted for the page.
type FavoriteView struct {
	LinkURL     string
	FavoritedAt string
}

func favoriteViews(favs []models.Favorite) []FavoriteView {
	out := make([]FavoriteView, 0, len(favs))
	for _, f := range favs {
		out = append(out, FavoriteView{
			LinkURL:     f.LinkURL,
			FavoritedAt: f.FavoritedAt.Format(favoriteTimeLayout),
		})
	}
	return out
}

// Home renders the empty search page with the user's favorites.
func (h *SearchHandler) Home(c *gin.Context) {
	userKey := middleware.GetUserKey(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Query":     "",
		"PDFs":      []string{},
		"Favorites": favoriteViews(h.svc.Favorites(userKey)),
	})
}

// Search handles the search form: optional typed query, optional
// uploaded image. Any pipeline failure renders the error page.
func (h *SearchHandler) Search(c *gin.Context) {
	userKey := middleware.GetUserKey(c)
	query := c.PostForm("query")

	var image []byte
	if file, err := c.FormFile("image"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"ErrorMessage": "Could not read uploaded image: " + err.Error()})
			return
		}
		image, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			c.HTML(http.StatusOK, "error.html", gin.H{"ErrorMessage": "Could not read uploaded image: " + err.Error()})
			return
		}
	}

	outcome := h.svc.Run(c.Request.Context(), userKey, query, image)
	if outcome.Err != nil {
		log.Printf("[SEARCH] request failed for key %q: %v", userKey, outcome.Err)
		c.HTML(http.StatusOK, "error.html", gin.H{"ErrorMessage": outcome.Err.Error()})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Query":     query,
		"PDFs":      outcome.PDFs,
		"Favorites": favoriteViews(outcome.Favorites),
	})
}
