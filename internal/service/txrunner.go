package service

import (
	"context"

	"cardtracker.app/api/core/db"
	"cardtracker.app/api/core/db/sqlc"
	"cardtracker.app/api/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Cards() store.CardStore
	CardEvents() store.CardEventStore
	Users() store.UserStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
	WithReadTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}

func (r *dbTxRunner) WithReadTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithReadTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}
