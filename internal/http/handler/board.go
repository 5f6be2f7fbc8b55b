package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardtracker.app/api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

func (h *BoardHandler) Lists(c *gin.Context) {
	lists, err := h.boardService.Lists(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}
