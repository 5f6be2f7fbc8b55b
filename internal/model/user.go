package model

import (
	"encoding/json"
	"time"
)

type User struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Settings  json.RawMessage `json:"settings"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
