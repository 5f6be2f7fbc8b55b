package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cardtracker.app/api/internal/http/dto"
	"cardtracker.app/api/internal/service"
	"cardtracker.app/api/internal/timeline"
)

const closeOpenNow = "now"

type CardHandler struct {
	historyService service.HistoryService
	metricsService service.MetricsService
	cardService    service.CardService
}

func NewCardHandler(historyService service.HistoryService, metricsService service.MetricsService, cardService service.CardService) *CardHandler {
	return &CardHandler{
		historyService: historyService,
		metricsService: metricsService,
		cardService:    cardService,
	}
}

// FetchHistory pulls the card's action log from Trello and replaces what is stored.
func (h *CardHandler) FetchHistory(c *gin.Context) {
	cardID := c.Param("id")

	result, err := h.historyService.Ingest(c.Request.Context(), cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFetchHistoryResponse(cardID, result))
}

func (h *CardHandler) Metrics(c *gin.Context) {
	result, err := h.metricsService.Compute(c.Request.Context(), c.Param("id"), aggregateOptions(c)...)
	if err != nil {
		if errors.Is(err, timeline.ErrNoHistory) {
			c.JSON(http.StatusOK, dto.MessageResponse{Message: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMetricsResponse(result))
}

func (h *CardHandler) History(c *gin.Context) {
	visits, err := h.historyService.Visits(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVisitResponses(visits))
}

func (h *CardHandler) DetailedHistory(c *gin.Context) {
	events, err := h.historyService.Events(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.cardService.List(c.Request.Context(), service.CardListParams{
		CreatedAfter:         c.Query("created_after"),
		TrelloCardIDContains: c.Query("trello_card_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponses(cards))
}

// aggregateOptions reads ?close_open=now, which extends segments still open
// after the last event up to the current time.
func aggregateOptions(c *gin.Context) []timeline.Option {
	if c.Query("close_open") == closeOpenNow {
		return []timeline.Option{timeline.CloseOpenAt(time.Now())}
	}
	return nil
}
