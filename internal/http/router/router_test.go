package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cardtracker.app/api/common/metrics"
	"cardtracker.app/api/internal/http/router"
	"cardtracker.app/api/internal/service"
	"cardtracker.app/api/internal/store"
)

var _ = Describe("SetupRoutes", func() {
	var engine *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		engine = gin.New()
		services := service.NewServices(service.ServicesConfig{Stores: store.NewStores(nil)})
		router.SetupRoutes(engine, services, router.RouterConfig{
			PublicURL: "https://tracker.example.com/",
			Metrics:   metrics.New(),
		})
	})

	It("registers every endpoint", func() {
		routes := map[string]bool{}
		for _, r := range engine.Routes() {
			routes[r.Method+" "+r.Path] = true
		}

		Expect(routes).To(HaveKey("GET /health"))
		Expect(routes).To(HaveKey("GET /metrics"))
		Expect(routes).To(HaveKey("GET /manifest.json"))
		Expect(routes).To(HaveKey("GET /api/card/:id/fetch-history"))
		Expect(routes).To(HaveKey("GET /api/card/:id/metrics"))
		Expect(routes).To(HaveKey("GET /api/card/:id/history"))
		Expect(routes).To(HaveKey("GET /api/card/:id/detailed-history"))
		Expect(routes).To(HaveKey("GET /api/cards"))
		Expect(routes).To(HaveKey("GET /api/export/:id"))
		Expect(routes).To(HaveKey("POST /api/settings"))
		Expect(routes).To(HaveKey("GET /api/settings/:username"))
		Expect(routes).To(HaveKey("GET /api/board/:id/lists"))
	})

	It("serves health", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))
	})

	It("serves the Power-Up manifest pointing at the public URL", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manifest.json", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		var manifest map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &manifest)).To(Succeed())
		Expect(manifest["scopes"]).To(Equal([]any{"read"}))
		Expect(manifest["connect"]).To(Equal(map[string]any{
			"iframe": map[string]any{"url": "https://tracker.example.com/powerup_frame.html"},
		}))
		Expect(manifest["capabilities"]).To(ContainElement("card-buttons"))
	})

	It("serves Prometheus metrics", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("go_goroutines"))
	})
})
