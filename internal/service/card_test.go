package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/service"
)

var _ = Describe("CardService", func() {
	var (
		ctx      context.Context
		cards    *mockCardStore
		svc      service.CardService
		captured model.CardFilter
	)

	BeforeEach(func() {
		ctx = context.Background()
		cards = &mockCardStore{
			listFn: func(_ context.Context, filter model.CardFilter) ([]model.Card, error) {
				captured = filter
				return []model.Card{{ID: 1, TrelloCardID: "abc"}}, nil
			},
		}
		svc = service.NewCardService(cards)
	})

	It("lists without filters", func() {
		result, err := svc.List(ctx, service.CardListParams{})
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(HaveLen(1))
		Expect(captured.CreatedAfter).To(BeNil())
		Expect(captured.TrelloCardIDContains).To(BeNil())
	})

	It("parses the date and substring filters", func() {
		_, err := svc.List(ctx, service.CardListParams{CreatedAfter: "2024-03-05", TrelloCardIDContains: "ab"})
		Expect(err).NotTo(HaveOccurred())

		Expect(*captured.CreatedAfter).To(Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
		Expect(*captured.TrelloCardIDContains).To(Equal("ab"))
	})

	It("rejects malformed dates", func() {
		_, err := svc.List(ctx, service.CardListParams{CreatedAfter: "05/03/2024"})

		var ve *service.ValidationError
		Expect(errors.As(err, &ve)).To(BeTrue())
		Expect(ve.Field).To(Equal("created_after"))
	})

	It("wraps store failures", func() {
		cards.listFn = func(context.Context, model.CardFilter) ([]model.Card, error) {
			return nil, errors.New("db down")
		}

		_, err := svc.List(ctx, service.CardListParams{})
		Expect(err).To(MatchError(ContainSubstring("listing cards")))
	})
})
