package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"cardtracker.app/api/core/db/sqlc"
	"cardtracker.app/api/internal/model"
)

type cardEventStore struct {
	queries *sqlc.Queries
}

func newCardEventStore(queries *sqlc.Queries) CardEventStore {
	return &cardEventStore{queries: queries}
}

// ListByCard returns the card's events ordered by occurrence, ties by arrival.
func (s *cardEventStore) ListByCard(ctx context.Context, cardID int64) ([]model.CardEvent, error) {
	rows, err := s.queries.ListCardEvents(ctx, cardID)
	if err != nil {
		return nil, err
	}

	result := make([]model.CardEvent, 0, len(rows))
	for _, row := range rows {
		result = append(result, toCardEventModel(row))
	}
	return result, nil
}

// Replace must run inside a transaction for the swap to be atomic.
func (s *cardEventStore) Replace(ctx context.Context, cardID int64, events []model.CardEvent) (int64, error) {
	if _, err := s.queries.DeleteCardEvents(ctx, cardID); err != nil {
		return 0, fmt.Errorf("deleting card events: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	params := make([]sqlc.InsertCardEventsParams, 0, len(events))
	for _, e := range events {
		params = append(params, sqlc.InsertCardEventsParams{
			ID:         e.ID,
			CardID:     cardID,
			Seq:        e.Seq,
			ActionKind: string(e.Kind),
			ListName:   e.ListName,
			MemberID:   e.MemberID,
			MemberName: e.MemberName,
			OccurredAt: pgtype.Timestamptz{Time: e.OccurredAt, Valid: true},
		})
	}

	n, err := s.queries.InsertCardEvents(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("inserting card events: %w", err)
	}
	return n, nil
}

func toCardEventModel(row sqlc.CardEvent) model.CardEvent {
	return model.CardEvent{
		ID:         row.ID,
		CardID:     row.CardID,
		Seq:        row.Seq,
		Kind:       model.ActionKind(row.ActionKind),
		ListName:   row.ListName,
		MemberID:   row.MemberID,
		MemberName: row.MemberName,
		OccurredAt: row.OccurredAt.Time,
	}
}
