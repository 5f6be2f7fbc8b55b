package service

import (
	"context"

	"cardtracker.app/api/internal/timeline"
)

type MetricsService interface {
	// Compute aggregates the card's stored events. It returns
	// timeline.ErrNoHistory when the card has none.
	Compute(ctx context.Context, trelloCardID string, opts ...timeline.Option) (*timeline.Result, error)
}

type metricsService struct {
	txRunner TxRunner
}

func NewMetricsService(txRunner TxRunner) MetricsService {
	return &metricsService{txRunner: txRunner}
}

func (s *metricsService) Compute(ctx context.Context, trelloCardID string, opts ...timeline.Option) (*timeline.Result, error) {
	_, events, err := loadCardEvents(ctx, s.txRunner, trelloCardID)
	if err != nil {
		return nil, err
	}
	return timeline.Aggregate(events, opts...)
}
