package router

import (
	"net/http"

	"github.com/ComradeCold/pdf-finder-project/config"
	"github.com/ComradeCold/pdf-finder-project/internal/handler"
	"github.com/ComradeCold/pdf-finder-project/internal/middleware"
	"github.com/ComradeCold/pdf-finder-project/internal/repository"
	"github.com/ComradeCold/pdf-finder-project/internal/service"
	"github.com/ComradeCold/pdf-finder-project/pkg/vision"
	"github.com/ComradeCold/pdf-finder-project/pkg/websearch"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Sessions(&cfg.Session))
	r.Use(middleware.Identity())

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	// Repositories
	favRepo := repository.NewFavoriteRepository(db)
	clickRepo := repository.NewClickRepository(db)

	// Provider adapters
	extractor := vision.NewClient(cfg.Vision.BaseURL, cfg.Vision.APIKey, cfg.Vision.Timeout)
	searcher := websearch.NewClient(cfg.Search.BaseURL, cfg.Search.APIKey, cfg.Search.EngineID, cfg.Search.Timeout)

	// Services
	searchSvc := service.NewSearchService(extractor, searcher, favRepo)

	// Handlers
	searchHandler := handler.NewSearchHandler(searchSvc)
	clickHandler := handler.NewClickHandler(clickRepo)
	favoriteHandler := handler.NewFavoriteHandler(favRepo)
	keyHandler := handler.NewKeyHandler()

	r.GET("/", searchHandler.Home)
	r.POST("/", searchHandler.Search)

	api := r.Group("/api")
	{
		api.POST("/click", clickHandler.Record)
		api.GET("/clicks", clickHandler.ListRecent)
		api.POST("/favorite", favoriteHandler.Toggle)
		api.GET("/get-favorites", favoriteHandler.List)
		api.POST("/set-key", keyHandler.SetKey)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
