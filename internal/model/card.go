package model

import "time"

type Card struct {
	ID           int64     `json:"id"`
	TrelloCardID string    `json:"trello_card_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// CardFilter narrows card listings. Nil fields do not filter.
type CardFilter struct {
	CreatedAfter         *time.Time
	TrelloCardIDContains *string
}
