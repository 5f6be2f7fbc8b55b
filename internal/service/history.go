package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cardtracker.app/api/common/id"
	"cardtracker.app/api/common/logger"
	"cardtracker.app/api/common/metrics"
	"cardtracker.app/api/internal/mapper"
	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/store"
	"cardtracker.app/api/internal/timeline"
	"cardtracker.app/api/internal/trello"
)

type IngestResult struct {
	Card    *model.Card
	Fetched int
	Stored  int
}

// HistoryService pulls card action logs from Trello and serves the stored history.
type HistoryService interface {
	// Ingest replaces the card's stored events with a fresh normalization of
	// its Trello action log.
	Ingest(ctx context.Context, trelloCardID string) (*IngestResult, error)
	Visits(ctx context.Context, trelloCardID string) ([]timeline.Visit, error)
	// Events returns every stored event of the card in time order.
	Events(ctx context.Context, trelloCardID string) ([]model.CardEvent, error)
}

type historyService struct {
	txRunner TxRunner
	trello   trello.API
	mapper   *mapper.TrelloMapper
	metrics  *metrics.Recorder
}

func NewHistoryService(txRunner TxRunner, api trello.API, recorder *metrics.Recorder) HistoryService {
	return &historyService{
		txRunner: txRunner,
		trello:   api,
		mapper:   mapper.NewTrelloMapper(listNameResolver(api)),
		metrics:  recorder,
	}
}

func listNameResolver(api trello.API) mapper.ListNameResolver {
	return mapper.ListNameFunc(func(ctx context.Context, listID string) (string, error) {
		list, err := api.List(ctx, listID)
		if err != nil {
			return "", err
		}
		return list.Name, nil
	})
}

func (s *historyService) Ingest(ctx context.Context, trelloCardID string) (*IngestResult, error) {
	if err := validateCardID(trelloCardID); err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		TrelloCardID: &trelloCardID,
		Component:    "tracker.history",
	})
	sc := logger.StartSpan(ctx, "history.ingest")
	defer sc.End()
	ctx = sc.Context()

	actions, err := s.trello.CardActions(ctx, trelloCardID)
	if err != nil {
		return nil, s.upstreamFailure(ctx, sc, fmt.Errorf("fetching card actions: %w", err))
	}

	info, err := s.trello.Card(ctx, trelloCardID)
	if err != nil {
		return nil, s.upstreamFailure(ctx, sc, fmt.Errorf("fetching card: %w", err))
	}

	events := s.mapper.Map(ctx, trelloCardID, actions, s.currentListName(ctx, info))
	for i := range events {
		events[i].ID = id.New()
	}

	card := &model.Card{ID: id.New(), TrelloCardID: trelloCardID}
	var stored int64

	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Cards().Lock(ctx, trelloCardID); err != nil {
			return fmt.Errorf("locking card: %w", err)
		}
		if err := sp.Cards().Upsert(ctx, card); err != nil {
			return fmt.Errorf("upserting card: %w", err)
		}
		for i := range events {
			events[i].CardID = card.ID
		}

		var err error
		stored, err = sp.CardEvents().Replace(ctx, card.ID, events)
		if err != nil {
			return fmt.Errorf("replacing card events: %w", err)
		}
		return nil
	})
	if err != nil {
		sc.RecordError(err)
		s.metrics.RecordIngestion(metrics.OutcomeStoreError, 0)
		slog.ErrorContext(ctx, "failed to store card history", "error", err)
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{CardID: &card.ID})
	s.metrics.RecordIngestion(metrics.OutcomeStored, int(stored))
	slog.InfoContext(ctx, "card history stored",
		"actions", len(actions),
		"events", stored,
	)

	return &IngestResult{
		Card:    card,
		Fetched: len(actions),
		Stored:  int(stored),
	}, nil
}

// currentListName backs createCard actions without a list. A failed lookup
// only loses that fallback.
func (s *historyService) currentListName(ctx context.Context, card *trello.Card) string {
	if card == nil || card.IDList == "" {
		return ""
	}
	list, err := s.trello.List(ctx, card.IDList)
	if err != nil {
		slog.WarnContext(ctx, "current list lookup failed", "list_id", card.IDList, "error", err)
		return ""
	}
	return list.Name
}

func (s *historyService) upstreamFailure(ctx context.Context, sc *logger.SpanContext, err error) error {
	sc.RecordError(err)
	s.metrics.RecordIngestion(metrics.OutcomeUpstreamError, 0)
	slog.ErrorContext(ctx, "failed to fetch card history from trello", "error", err)
	return err
}

func (s *historyService) Visits(ctx context.Context, trelloCardID string) ([]timeline.Visit, error) {
	events, err := s.Events(ctx, trelloCardID)
	if err != nil {
		return nil, err
	}
	return timeline.Visits(events), nil
}

func (s *historyService) Events(ctx context.Context, trelloCardID string) ([]model.CardEvent, error) {
	_, events, err := loadCardEvents(ctx, s.txRunner, trelloCardID)
	if err != nil {
		return nil, err
	}
	return timeline.Sorted(events), nil
}

// loadCardEvents reads a card and its events under the card's shared lock so
// a concurrent ingest is seen either entirely or not at all.
func loadCardEvents(ctx context.Context, txRunner TxRunner, trelloCardID string) (*model.Card, []model.CardEvent, error) {
	if err := validateCardID(trelloCardID); err != nil {
		return nil, nil, err
	}

	var (
		card   *model.Card
		events []model.CardEvent
	)
	err := txRunner.WithReadTx(ctx, func(sp StoreProvider) error {
		if err := sp.Cards().LockShared(ctx, trelloCardID); err != nil {
			return fmt.Errorf("locking card: %w", err)
		}

		var err error
		card, err = sp.Cards().GetByTrelloID(ctx, trelloCardID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCardNotFound
			}
			return fmt.Errorf("fetching card: %w", err)
		}

		events, err = sp.CardEvents().ListByCard(ctx, card.ID)
		if err != nil {
			return fmt.Errorf("listing card events: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCardNotFound) {
			slog.ErrorContext(ctx, "failed to load card history", "error", err, "trello_card_id", trelloCardID)
		}
		return nil, nil, err
	}

	for i := range events {
		events[i].TrelloCardID = card.TrelloCardID
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{TrelloCardID: &card.TrelloCardID, CardID: &card.ID})
	slog.DebugContext(ctx, "card history loaded", "events", len(events))
	return card, events, nil
}

func validateCardID(trelloCardID string) error {
	if strings.TrimSpace(trelloCardID) == "" {
		return &ValidationError{Field: "card_id", Message: "must not be empty"}
	}
	return nil
}
