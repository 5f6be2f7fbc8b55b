package service

import (
	"context"
	"fmt"
	"log/slog"

	"cardtracker.app/api/common/logger"
	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/trello"
)

type BoardService interface {
	Lists(ctx context.Context, boardID string) ([]model.BoardList, error)
}

type boardService struct {
	trello trello.API
}

func NewBoardService(api trello.API) BoardService {
	return &boardService{trello: api}
}

func (s *boardService) Lists(ctx context.Context, boardID string) ([]model.BoardList, error) {
	if boardID == "" {
		return nil, &ValidationError{Field: "board_id", Message: "must not be empty"}
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{BoardID: &boardID})

	lists, err := s.trello.BoardLists(ctx, boardID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch board lists", "error", err)
		return nil, fmt.Errorf("fetching board lists: %w", err)
	}

	result := make([]model.BoardList, 0, len(lists))
	for _, l := range lists {
		result = append(result, model.BoardList{
			ID:      l.ID,
			Name:    l.Name,
			Closed:  l.Closed,
			Pos:     l.Pos,
			IDBoard: l.IDBoard,
		})
	}
	return result, nil
}
