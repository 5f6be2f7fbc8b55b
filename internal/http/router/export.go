package router

import (
	"github.com/gin-gonic/gin"

	"cardtracker.app/api/internal/http/handler"
)

func ExportRouter(rg *gin.RouterGroup, h *handler.ExportHandler) {
	rg.GET("/:id", h.Export)
}
