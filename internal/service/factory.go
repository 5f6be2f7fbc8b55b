package service

import (
	"cardtracker.app/api/common/metrics"
	"cardtracker.app/api/internal/store"
	"cardtracker.app/api/internal/trello"
)

type ServicesConfig struct {
	Stores   *store.Stores
	TxRunner TxRunner
	Trello   trello.API
	Metrics  *metrics.Recorder
}

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	trello   trello.API
	metrics  *metrics.Recorder
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		stores:   cfg.Stores,
		txRunner: cfg.TxRunner,
		trello:   cfg.Trello,
		metrics:  cfg.Metrics,
	}
}

func (s *Services) History() HistoryService {
	return NewHistoryService(s.txRunner, s.trello, s.metrics)
}

func (s *Services) Metrics() MetricsService {
	return NewMetricsService(s.txRunner)
}

func (s *Services) Cards() CardService {
	return NewCardService(s.stores.Cards())
}

func (s *Services) Settings() SettingsService {
	return NewSettingsService(s.stores.Users())
}

func (s *Services) Boards() BoardService {
	return NewBoardService(s.trello)
}
