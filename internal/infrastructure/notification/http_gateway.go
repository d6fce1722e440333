// Package notification delivers composed order payloads to the external
// order notification endpoint.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kashpo/storefront/internal/domain/order"
	"github.com/kashpo/storefront/internal/infrastructure/logger"
	"github.com/kashpo/storefront/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// maxResponseSize bounds how much of the endpoint's response is read (64KB)
const maxResponseSize = 64 * 1024

// DefaultTimeout bounds a single delivery when the config sets none
const DefaultTimeout = 10 * time.Second

// Errors for gateway configuration
var (
	ErrMissingBaseURL = errors.New("notification: base url is required")
	ErrInvalidBaseURL = errors.New("notification: base url must be an absolute http(s) url")
	ErrMissingToken   = errors.New("notification: token is required")
)

// Config holds the notification endpoint settings
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Validate validates the gateway configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidBaseURL
	}
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

type deliveryResponse struct {
	Success *bool `json:"success"`
}

// HTTPGateway posts order payloads as JSON with bearer authorization.
//
// It makes exactly one request per Deliver call: no retry, no backoff, no
// idempotency key. It holds no per-delivery state and is safe for concurrent use.
type HTTPGateway struct {
	config     Config
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures an HTTPGateway
type Option func(*HTTPGateway)

// WithHTTPClient replaces the HTTP client (its Timeout is ignored; Config.Timeout applies)
func WithHTTPClient(c *http.Client) Option {
	return func(g *HTTPGateway) {
		g.httpClient = c
	}
}

// WithLogger sets the logger used for delivery outcomes
func WithLogger(l *zap.Logger) Option {
	return func(g *HTTPGateway) {
		g.logger = l
	}
}

// NewHTTPGateway creates a gateway for the given configuration
func NewHTTPGateway(cfg Config, opts ...Option) (*HTTPGateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &HTTPGateway{
		config:     cfg,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Deliver sends payload and reports whether the endpoint accepted it.
//
// Success is an HTTP 2xx response whose JSON body is {"success": true}. Any
// other status, a transport error or a malformed body yields false. Deliver
// never panics and never returns an error.
//
// Once issued the request is not cancelled by ctx: it runs detached from the
// caller's cancellation and is bounded only by the configured timeout.
func (g *HTTPGateway) Deliver(ctx context.Context, payload *order.Payload) bool {
	if payload == nil {
		g.logger.Warn("Order notification skipped: nil payload")
		return false
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.config.Timeout)
	defer cancel()

	ctx, span := telemetry.StartSpan(ctx, "notification.deliver",
		telemetry.WithSpanKind(trace.SpanKindClient),
		telemetry.WithAttribute(telemetry.SpanAttrItems, len(payload.Items)),
		telemetry.WithAttribute(telemetry.SpanAttrContact, payload.IsContact()),
		telemetry.WithAttribute(telemetry.SpanAttrLanguage, payload.Language.String()),
	)
	defer span.End()

	start := time.Now()
	status, err := g.post(ctx, payload)
	latency := time.Since(start)

	fields := []zap.Field{
		zap.Int("status", status),
		zap.Duration("latency", latency),
		zap.String("language", payload.Language.String()),
		zap.Int("items", len(payload.Items)),
		zap.Bool("contact", payload.IsContact()),
	}
	log := logger.WithTraceContext(ctx, g.logger)
	if status != 0 {
		telemetry.SetAttributes(span, telemetry.SpanAttrStatus, status)
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrDelivered, err == nil)

	if err != nil {
		telemetry.RecordError(span, err)
		log.Warn("Order notification not delivered", append(fields, zap.Error(err))...)
		return false
	}
	telemetry.SetOK(span)
	log.Info("Order notification delivered", fields...)
	return true
}

// post returns the response status (0 when no response arrived) and nil only on acceptance
func (g *HTTPGateway) post(ctx context.Context, payload *order.Payload) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.Token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", redactURLError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out deliveryResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return resp.StatusCode, fmt.Errorf("malformed response body: %w", err)
	}
	if out.Success == nil || !*out.Success {
		return resp.StatusCode, errors.New("endpoint did not confirm success")
	}
	return resp.StatusCode, nil
}

// redactURLError drops the request URL from transport errors so query-string
// credentials in the base URL never reach the logs
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

var _ order.Gateway = (*HTTPGateway)(nil)
