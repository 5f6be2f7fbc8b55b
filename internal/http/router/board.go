package router

import (
	"github.com/gin-gonic/gin"

	"cardtracker.app/api/internal/http/handler"
)

func BoardRouter(rg *gin.RouterGroup, h *handler.BoardHandler) {
	rg.GET("/:id/lists", h.Lists)
}
