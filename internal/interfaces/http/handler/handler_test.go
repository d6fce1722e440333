package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/kashpo/storefront/internal/application/catalog"
	apporder "github.com/kashpo/storefront/internal/application/order"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/order"
	"github.com/kashpo/storefront/internal/domain/pricing"
	"github.com/kashpo/storefront/internal/infrastructure/cache"
	"github.com/kashpo/storefront/internal/infrastructure/persistence"
	"github.com/kashpo/storefront/internal/interfaces/http/dto"
	"github.com/kashpo/storefront/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordingGateway records delivered payloads and answers with accept
type recordingGateway struct {
	mu       sync.Mutex
	accept   bool
	payloads []order.Payload
}

func (g *recordingGateway) Deliver(_ context.Context, payload *order.Payload) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.payloads = append(g.payloads, payload.Clone())
	return g.accept
}

func (g *recordingGateway) Delivered() []order.Payload {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]order.Payload(nil), g.payloads...)
}

type testServer struct {
	engine  *gin.Engine
	gateway *recordingGateway
	store   *cache.InMemoryKVStore
}

func newTestServer(t *testing.T, submitLimit gin.HandlerFunc) *testServer {
	t.Helper()

	repo, err := persistence.NewCatalogRepository(persistence.SeedCatalog())
	require.NoError(t, err)
	engine, err := pricing.NewEngine(pricing.DefaultRules())
	require.NoError(t, err)

	store := cache.NewInMemoryKVStore()
	gateway := &recordingGateway{accept: true}
	carts := apporder.NewCartService(store, repo, engine)
	checkout := apporder.NewCheckoutService(apporder.NewComposer(repo, engine), gateway, carts, zap.NewNop())

	ginEngine, err := router.NewEngine(router.EngineConfig{DefaultLocale: i18n.LocaleRU, MaxBodySize: 1 << 16}, zap.NewNop())
	require.NoError(t, err)
	ginEngine.GET(router.HealthPath, NewHealthHandler(store, repo.Len()).Health)

	router.NewRouter(ginEngine).
		Register(NewCatalogHandler(appcatalog.NewCatalogService(repo, engine))).
		Register(NewCartHandler(carts)).
		Register(NewOrderHandler(checkout, submitLimit)).
		Setup()

	return &testServer{engine: ginEngine, gateway: gateway, store: store}
}

func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp dto.Response
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

// decodeData re-decodes the response data into out
func decodeData(t *testing.T, resp dto.Response, out any) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
