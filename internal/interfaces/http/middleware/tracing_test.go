package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func tracedRouter(cfg TracingConfig) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Tracing(cfg), Locale(i18n.LocaleRU), SpanEnricher())
	r.GET("/api/v1/catalog/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusBadGateway) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestTracing_RecordsEnrichedSpans(t *testing.T) {
	sr := setupTestTracer(t)
	r := tracedRouter(TracingConfig{ServiceName: "storefront-test", Enabled: true, SkipPaths: []string{"/health"}})

	w := serve(r, http.MethodGet, "/api/v1/catalog/products/fiber?lang=uz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Contains(t, span.Name(), "/api/v1/catalog/products/:id")

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, w.Header().Get(RequestIDHeader), attrs["request_id"])
	assert.Equal(t, "uz", attrs["locale"])
	assert.NotEqual(t, codes.Error, span.Status().Code)
}

func TestTracing_MarksServerErrors(t *testing.T) {
	sr := setupTestTracer(t)
	r := tracedRouter(TracingConfig{ServiceName: "storefront-test", Enabled: true})

	serve(r, http.MethodGet, "/boom", nil)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestTracing_SkipsHealthAndDisabled(t *testing.T) {
	sr := setupTestTracer(t)

	serve(tracedRouter(TracingConfig{ServiceName: "storefront-test", Enabled: true, SkipPaths: []string{"/health"}}), http.MethodGet, "/health", nil)
	assert.Empty(t, sr.Ended())

	serve(tracedRouter(TracingConfig{Enabled: false}), http.MethodGet, "/api/v1/catalog/products/x", nil)
	assert.Empty(t, sr.Ended())
}
