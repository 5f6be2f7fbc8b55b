package cache_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/redis/go-redis/v9"

	"cardtracker.app/api/internal/cache"
)

var _ = Describe("Nop", func() {
	It("never reports a hit", func() {
		c := cache.Nop()
		ctx := context.Background()

		Expect(c.Set(ctx, "k", "v", time.Minute)).To(Succeed())

		var out string
		hit, err := c.Get(ctx, "k", &out)
		Expect(err).NotTo(HaveOccurred())
		Expect(hit).To(BeFalse())
		Expect(out).To(BeEmpty())
	})
})

// memoryHook answers GET and SET in process so the adapter runs without a server.
type memoryHook struct {
	data map[string]string
	sets [][]any
}

func (h *memoryHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *memoryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (h *memoryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		args := cmd.Args()
		switch c := cmd.(type) {
		case *redis.StringCmd:
			v, ok := h.data[args[1].(string)]
			if !ok {
				c.SetErr(redis.Nil)
				return redis.Nil
			}
			c.SetVal(v)
			return nil
		case *redis.StatusCmd:
			h.sets = append(h.sets, args)
			switch v := args[2].(type) {
			case []byte:
				h.data[args[1].(string)] = string(v)
			case string:
				h.data[args[1].(string)] = v
			}
			c.SetVal("OK")
			return nil
		}
		return next(ctx, cmd)
	}
}

type cachedList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var _ = Describe("Redis", func() {
	Context("with a reachable server", func() {
		var (
			hook *memoryHook
			c    cache.Cache
			ctx  context.Context
		)

		BeforeEach(func() {
			ctx = context.Background()
			hook = &memoryHook{data: map[string]string{}}
			client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
			client.AddHook(hook)
			c = cache.NewRedis(client, "test:", nil)
			DeferCleanup(c.Close)
		})

		It("round-trips values as JSON under the prefixed key", func() {
			Expect(c.Set(ctx, "list:l1", cachedList{ID: "l1", Name: "Doing"}, time.Minute)).To(Succeed())

			Expect(hook.data).To(HaveKeyWithValue("test:list:l1", `{"id":"l1","name":"Doing"}`))
			Expect(hook.sets).To(HaveLen(1))
			Expect(hook.sets[0][3:]).To(Equal([]any{"ex", int64(60)}))

			var out cachedList
			hit, err := c.Get(ctx, "list:l1", &out)
			Expect(err).NotTo(HaveOccurred())
			Expect(hit).To(BeTrue())
			Expect(out).To(Equal(cachedList{ID: "l1", Name: "Doing"}))
		})

		It("reports a miss for absent keys", func() {
			var out cachedList
			hit, err := c.Get(ctx, "list:missing", &out)
			Expect(err).NotTo(HaveOccurred())
			Expect(hit).To(BeFalse())
		})

		It("treats undecodable entries as a miss", func() {
			hook.data["test:list:bad"] = "not json"

			var out cachedList
			hit, err := c.Get(ctx, "list:bad", &out)
			Expect(err).NotTo(HaveOccurred())
			Expect(hit).To(BeFalse())
		})
	})

	It("surfaces connection failures from Get", func() {
		client := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		})
		c := cache.NewRedis(client, "test:", nil)
		defer c.Close()

		var out string
		hit, err := c.Get(context.Background(), "k", &out)
		Expect(err).To(HaveOccurred())
		Expect(hit).To(BeFalse())
	})

	It("rejects malformed URLs in Connect", func() {
		_, err := cache.Connect(context.Background(), "not-a-url://")
		Expect(err).To(MatchError(ContainSubstring("parse redis url")))
	})
})
