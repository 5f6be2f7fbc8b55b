package store

import (
	"context"
	"encoding/json"
	"errors"

	"cardtracker.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// CardStore defines the contract for card data access
type CardStore interface {
	GetByTrelloID(ctx context.Context, trelloCardID string) (*model.Card, error)
	Upsert(ctx context.Context, card *model.Card) error
	List(ctx context.Context, filter model.CardFilter) ([]model.Card, error)
	// Lock takes the card's exclusive transaction-scoped lock.
	Lock(ctx context.Context, trelloCardID string) error
	// LockShared takes the card's shared transaction-scoped lock.
	LockShared(ctx context.Context, trelloCardID string) error
}

// CardEventStore defines the contract for card history data access
type CardEventStore interface {
	ListByCard(ctx context.Context, cardID int64) ([]model.CardEvent, error)
	// Replace deletes every stored event of the card and inserts events in their place.
	Replace(ctx context.Context, cardID int64, events []model.CardEvent) (int64, error)
}

// UserStore defines the contract for user settings data access
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	UpsertSettings(ctx context.Context, user *model.User, settings json.RawMessage) error
}
