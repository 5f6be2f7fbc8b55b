package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/store"
)

const dateLayout = "2006-01-02"

type CardListParams struct {
	CreatedAfter         string
	TrelloCardIDContains string
}

type CardService interface {
	List(ctx context.Context, params CardListParams) ([]model.Card, error)
}

type cardService struct {
	cardStore store.CardStore
}

func NewCardService(cardStore store.CardStore) CardService {
	return &cardService{cardStore: cardStore}
}

func (s *cardService) List(ctx context.Context, params CardListParams) ([]model.Card, error) {
	var filter model.CardFilter

	if params.CreatedAfter != "" {
		after, err := time.Parse(dateLayout, params.CreatedAfter)
		if err != nil {
			return nil, &ValidationError{Field: "created_after", Message: "invalid date format, use YYYY-MM-DD"}
		}
		filter.CreatedAfter = &after
	}
	if params.TrelloCardIDContains != "" {
		filter.TrelloCardIDContains = &params.TrelloCardIDContains
	}

	cards, err := s.cardStore.List(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list cards", "error", err)
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	return cards, nil
}
