package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardtracker.app/api/internal/http/dto"
)

type ManifestHandler struct {
	manifest *dto.Manifest
}

func NewManifestHandler(publicURL string) *ManifestHandler {
	return &ManifestHandler{manifest: dto.NewManifest(publicURL)}
}

func (h *ManifestHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.manifest)
}
