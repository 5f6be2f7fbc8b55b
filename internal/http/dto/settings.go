package dto

import "encoding/json"

type SaveSettingsRequest struct {
	Username string          `json:"username" binding:"required"`
	Settings json.RawMessage `json:"settings" binding:"required"`
}

type SettingsResponse struct {
	Settings json.RawMessage `json:"settings"`
}
