package router

import (
	"github.com/gin-gonic/gin"

	"cardtracker.app/api/internal/http/handler"
)

func CardRouter(rg *gin.RouterGroup, h *handler.CardHandler) {
	rg.GET("/cards", h.List)

	card := rg.Group("/card/:id")
	{
		card.GET("/fetch-history", h.FetchHistory)
		card.GET("/metrics", h.Metrics)
		card.GET("/history", h.History)
		card.GET("/detailed-history", h.DetailedHistory)
	}
}
