package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardtracker.app/api/common/metrics"
	"cardtracker.app/api/internal/http/handler"
	"cardtracker.app/api/internal/service"
)

type RouterConfig struct {
	PublicURL string
	Metrics   *metrics.Recorder
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	manifestHandler := handler.NewManifestHandler(cfg.PublicURL)
	router.GET("/manifest.json", manifestHandler.Get)

	api := router.Group("/api")
	{
		cardHandler := handler.NewCardHandler(services.History(), services.Metrics(), services.Cards())
		CardRouter(api, cardHandler)

		exportHandler := handler.NewExportHandler(services.Metrics())
		ExportRouter(api.Group("/export"), exportHandler)

		settingsHandler := handler.NewSettingsHandler(services.Settings())
		SettingsRouter(api.Group("/settings"), settingsHandler)

		boardHandler := handler.NewBoardHandler(services.Boards())
		BoardRouter(api.Group("/board"), boardHandler)
	}
}
