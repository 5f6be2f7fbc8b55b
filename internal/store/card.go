package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"cardtracker.app/api/core/db/sqlc"
	"cardtracker.app/api/internal/model"
)

type cardStore struct {
	queries *sqlc.Queries
}

func newCardStore(queries *sqlc.Queries) CardStore {
	return &cardStore{queries: queries}
}

func (s *cardStore) GetByTrelloID(ctx context.Context, trelloCardID string) (*model.Card, error) {
	row, err := s.queries.GetCardByTrelloID(ctx, trelloCardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCardModel(row), nil
}

// Upsert inserts the card or returns the existing row for its Trello ID.
// card is overwritten with the stored values.
func (s *cardStore) Upsert(ctx context.Context, card *model.Card) error {
	row, err := s.queries.UpsertCard(ctx, sqlc.UpsertCardParams{
		ID:           card.ID,
		TrelloCardID: card.TrelloCardID,
	})
	if err != nil {
		return err
	}
	*card = *toCardModel(row)
	return nil
}

func (s *cardStore) List(ctx context.Context, filter model.CardFilter) ([]model.Card, error) {
	params := sqlc.ListCardsParams{
		TrelloCardIDContains: filter.TrelloCardIDContains,
	}
	if filter.CreatedAfter != nil {
		params.CreatedAfter = pgtype.Timestamptz{Time: *filter.CreatedAfter, Valid: true}
	}

	rows, err := s.queries.ListCards(ctx, params)
	if err != nil {
		return nil, err
	}

	result := make([]model.Card, 0, len(rows))
	for _, row := range rows {
		result = append(result, *toCardModel(row))
	}
	return result, nil
}

func (s *cardStore) Lock(ctx context.Context, trelloCardID string) error {
	return s.queries.LockCard(ctx, trelloCardID)
}

func (s *cardStore) LockShared(ctx context.Context, trelloCardID string) error {
	return s.queries.LockCardShared(ctx, trelloCardID)
}

func toCardModel(row sqlc.Card) *model.Card {
	return &model.Card{
		ID:           row.ID,
		TrelloCardID: row.TrelloCardID,
		CreatedAt:    row.CreatedAt.Time,
	}
}
