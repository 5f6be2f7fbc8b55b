package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/service"
	"cardtracker.app/api/internal/trello"
)

var _ = Describe("BoardService", func() {
	It("passes board lists through", func() {
		api := &mockTrelloAPI{
			boardListsFn: func(_ context.Context, boardID string) ([]trello.List, error) {
				return []trello.List{{ID: "l1", Name: "Todo", Pos: 1, IDBoard: boardID}}, nil
			},
		}

		lists, err := service.NewBoardService(api).Lists(context.Background(), "b1")
		Expect(err).NotTo(HaveOccurred())
		Expect(lists).To(Equal([]model.BoardList{{ID: "l1", Name: "Todo", Pos: 1, IDBoard: "b1"}}))
	})

	It("keeps upstream failures detectable", func() {
		api := &mockTrelloAPI{
			boardListsFn: func(context.Context, string) ([]trello.List, error) {
				return nil, &trello.FetchError{Op: "board_lists", StatusCode: 500}
			},
		}

		_, err := service.NewBoardService(api).Lists(context.Background(), "b1")
		Expect(trello.IsFetchError(err)).To(BeTrue())
	})
})
