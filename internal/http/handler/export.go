package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cardtracker.app/api/internal/export"
	"cardtracker.app/api/internal/http/dto"
	"cardtracker.app/api/internal/service"
	"cardtracker.app/api/internal/timeline"
)

type ExportHandler struct {
	metricsService service.MetricsService
}

func NewExportHandler(metricsService service.MetricsService) *ExportHandler {
	return &ExportHandler{metricsService: metricsService}
}

// Export serves the card's metrics as json, csv, xml or xlsx. JSON is
// returned inline, other formats as attachments.
func (h *ExportHandler) Export(c *gin.Context) {
	cardID := c.Param("id")

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.metricsService.Compute(c.Request.Context(), cardID, aggregateOptions(c)...)
	if errors.Is(err, timeline.ErrNoHistory) {
		h.noHistory(c, format, cardID, err.Error())
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	metrics := dto.NewMetricsResponse(result)
	if format == export.FormatJSON {
		c.JSON(http.StatusOK, metrics)
		return
	}

	doc, err := export.Encode(format, cardID, metrics)
	if err != nil {
		respondError(c, err)
		return
	}
	attach(c, doc)
}

// noHistory answers with the message in the requested format.
func (h *ExportHandler) noHistory(c *gin.Context, format export.Format, cardID, message string) {
	if format == export.FormatJSON {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
		return
	}

	doc, err := export.EncodeMessage(format, cardID, message)
	if err != nil {
		respondError(c, err)
		return
	}
	attach(c, doc)
}

func attach(c *gin.Context, doc *export.Document) {
	c.Header("Content-Disposition", doc.ContentDisposition())
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
