package store

import (
	"cardtracker.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Cards() CardStore {
	return newCardStore(s.queries)
}

func (s *Stores) CardEvents() CardEventStore {
	return newCardEventStore(s.queries)
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}
