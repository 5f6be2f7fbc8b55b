package router

import (
	"github.com/gin-gonic/gin"

	"cardtracker.app/api/internal/http/handler"
)

func SettingsRouter(rg *gin.RouterGroup, h *handler.SettingsHandler) {
	rg.POST("", h.Save)
	rg.GET("/:username", h.Get)
}
