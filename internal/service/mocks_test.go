package service_test

import (
	"context"
	"encoding/json"

	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/service"
	"cardtracker.app/api/internal/store"
	"cardtracker.app/api/internal/trello"
)

type mockCardStore struct {
	getByTrelloIDFn func(ctx context.Context, trelloCardID string) (*model.Card, error)
	upsertFn        func(ctx context.Context, card *model.Card) error
	listFn          func(ctx context.Context, filter model.CardFilter) ([]model.Card, error)
	lockFn          func(ctx context.Context, trelloCardID string) error
	lockSharedFn    func(ctx context.Context, trelloCardID string) error
	calls           []string
}

func (m *mockCardStore) GetByTrelloID(ctx context.Context, trelloCardID string) (*model.Card, error) {
	m.calls = append(m.calls, "get")
	if m.getByTrelloIDFn != nil {
		return m.getByTrelloIDFn(ctx, trelloCardID)
	}
	return nil, store.ErrNotFound
}

func (m *mockCardStore) Upsert(ctx context.Context, card *model.Card) error {
	m.calls = append(m.calls, "upsert")
	if m.upsertFn != nil {
		return m.upsertFn(ctx, card)
	}
	return nil
}

func (m *mockCardStore) List(ctx context.Context, filter model.CardFilter) ([]model.Card, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []model.Card{}, nil
}

func (m *mockCardStore) Lock(ctx context.Context, trelloCardID string) error {
	m.calls = append(m.calls, "lock")
	if m.lockFn != nil {
		return m.lockFn(ctx, trelloCardID)
	}
	return nil
}

func (m *mockCardStore) LockShared(ctx context.Context, trelloCardID string) error {
	m.calls = append(m.calls, "lock_shared")
	if m.lockSharedFn != nil {
		return m.lockSharedFn(ctx, trelloCardID)
	}
	return nil
}

type mockCardEventStore struct {
	listByCardFn func(ctx context.Context, cardID int64) ([]model.CardEvent, error)
	replaceFn    func(ctx context.Context, cardID int64, events []model.CardEvent) (int64, error)
	replaced     [][]model.CardEvent
}

func (m *mockCardEventStore) ListByCard(ctx context.Context, cardID int64) ([]model.CardEvent, error) {
	if m.listByCardFn != nil {
		return m.listByCardFn(ctx, cardID)
	}
	return nil, nil
}

func (m *mockCardEventStore) Replace(ctx context.Context, cardID int64, events []model.CardEvent) (int64, error) {
	m.replaced = append(m.replaced, events)
	if m.replaceFn != nil {
		return m.replaceFn(ctx, cardID, events)
	}
	return int64(len(events)), nil
}

type mockUserStore struct {
	getByUsernameFn  func(ctx context.Context, username string) (*model.User, error)
	upsertSettingsFn func(ctx context.Context, user *model.User, settings json.RawMessage) error
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserStore) UpsertSettings(ctx context.Context, user *model.User, settings json.RawMessage) error {
	if m.upsertSettingsFn != nil {
		return m.upsertSettingsFn(ctx, user, settings)
	}
	return nil
}

type mockStoreProvider struct {
	cards  store.CardStore
	events store.CardEventStore
	users  store.UserStore
}

func (m *mockStoreProvider) Cards() store.CardStore {
	return m.cards
}

func (m *mockStoreProvider) CardEvents() store.CardEventStore {
	return m.events
}

func (m *mockStoreProvider) Users() store.UserStore {
	return m.users
}

type mockTxRunner struct {
	provider  service.StoreProvider
	withTxFn  func(ctx context.Context, fn func(stores service.StoreProvider) error) error
	txCalls   int
	readCalls int
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	m.txCalls++
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(m.provider)
}

func (m *mockTxRunner) WithReadTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	m.readCalls++
	return fn(m.provider)
}

type mockTrelloAPI struct {
	cardActionsFn func(ctx context.Context, cardID string) ([]trello.Action, error)
	cardFn        func(ctx context.Context, cardID string) (*trello.Card, error)
	listFn        func(ctx context.Context, listID string) (*trello.List, error)
	boardListsFn  func(ctx context.Context, boardID string) ([]trello.List, error)
}

func (m *mockTrelloAPI) CardActions(ctx context.Context, cardID string) ([]trello.Action, error) {
	if m.cardActionsFn != nil {
		return m.cardActionsFn(ctx, cardID)
	}
	return nil, nil
}

func (m *mockTrelloAPI) Card(ctx context.Context, cardID string) (*trello.Card, error) {
	if m.cardFn != nil {
		return m.cardFn(ctx, cardID)
	}
	return &trello.Card{ID: cardID}, nil
}

func (m *mockTrelloAPI) List(ctx context.Context, listID string) (*trello.List, error) {
	if m.listFn != nil {
		return m.listFn(ctx, listID)
	}
	return &trello.List{ID: listID}, nil
}

func (m *mockTrelloAPI) BoardLists(ctx context.Context, boardID string) ([]trello.List, error) {
	if m.boardListsFn != nil {
		return m.boardListsFn(ctx, boardID)
	}
	return nil, nil
}
