package trello_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cardtracker.app/api/internal/trello"
)

type mockAPI struct {
	trello.API
	listFn       func(ctx context.Context, listID string) (*trello.List, error)
	boardListsFn func(ctx context.Context, boardID string) ([]trello.List, error)
}

func (m *mockAPI) List(ctx context.Context, listID string) (*trello.List, error) {
	return m.listFn(ctx, listID)
}

func (m *mockAPI) BoardLists(ctx context.Context, boardID string) ([]trello.List, error) {
	return m.boardListsFn(ctx, boardID)
}

type memoryCache struct {
	data   map[string][]byte
	getErr error
}

func (c *memoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memoryCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memoryCache) Close() error { return nil }

var _ = Describe("CachedAPI", func() {
	var (
		upstream *mockAPI
		mem      *memoryCache
		api      *trello.CachedAPI
		calls    int
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		calls = 0
		upstream = &mockAPI{
			listFn: func(_ context.Context, listID string) (*trello.List, error) {
				calls++
				return &trello.List{ID: listID, Name: "Doing"}, nil
			},
			boardListsFn: func(_ context.Context, boardID string) ([]trello.List, error) {
				calls++
				return []trello.List{{ID: "l1", Name: "Todo", IDBoard: boardID}}, nil
			},
		}
		mem = &memoryCache{data: map[string][]byte{}}
		api = trello.NewCachedAPI(upstream, mem, time.Minute)
	})

	It("goes upstream on a miss and serves the second lookup from cache", func() {
		first, err := api.List(ctx, "l2")
		Expect(err).NotTo(HaveOccurred())
		second, err := api.List(ctx, "l2")
		Expect(err).NotTo(HaveOccurred())

		Expect(calls).To(Equal(1))
		Expect(second).To(Equal(first))
		Expect(mem.data).To(HaveKey("trello:list:l2"))
	})

	It("sends every board-list request upstream", func() {
		_, _ = api.BoardLists(ctx, "b1")
		lists, err := api.BoardLists(ctx, "b1")

		Expect(err).NotTo(HaveOccurred())
		Expect(lists).To(Equal([]trello.List{{ID: "l1", Name: "Todo", IDBoard: "b1"}}))
		Expect(calls).To(Equal(2))
		Expect(mem.data).To(BeEmpty())
	})

	It("falls through to upstream when the cache errors", func() {
		mem.getErr = errors.New("redis down")

		list, err := api.List(ctx, "l2")
		Expect(err).NotTo(HaveOccurred())
		Expect(list.Name).To(Equal("Doing"))
		Expect(calls).To(Equal(1))
	})

	It("does not cache upstream failures", func() {
		upstream.listFn = func(context.Context, string) (*trello.List, error) {
			return nil, &trello.FetchError{Op: "list", StatusCode: 404}
		}

		_, err := api.List(ctx, "missing")
		Expect(trello.IsFetchError(err)).To(BeTrue())
		Expect(mem.data).To(BeEmpty())
	})
})
