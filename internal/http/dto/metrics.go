package dto

import (
	"cardtracker.app/api/internal/export"
	"cardtracker.app/api/internal/timeline"
)

// MetricsResponse is served both by the metrics endpoint and the JSON export.
type MetricsResponse = export.Metrics

type MessageResponse struct {
	Message string `json:"message"`
}

func NewMetricsResponse(result *timeline.Result) MetricsResponse {
	return export.NewMetrics(result)
}
