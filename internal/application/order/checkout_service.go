package order

import (
	"context"
	"time"

	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/order"
	"github.com/kashpo/storefront/internal/domain/shared/valueobject"
	"github.com/kashpo/storefront/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CheckoutResult is the outcome of a submission
type CheckoutResult struct {
	Payload   order.Payload     `json:"payload"`
	Total     valueobject.Money `json:"total"`
	Delivered bool              `json:"delivered"`
	Message   string            `json:"message"`
}

// CheckoutService composes orders and hands them to the notification gateway.
//
// At most one delivery is in flight per logical order: concurrent submissions
// of an identical payload share the first one's result instead of issuing a
// second request. There is no retry; a failed delivery is reported and the
// customer may resubmit.
type CheckoutService struct {
	composer *Composer
	gateway  order.Gateway
	carts    *CartService
	inflight singleflight.Group
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(composer *Composer, gateway order.Gateway, carts *CartService, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		composer: composer,
		gateway:  gateway,
		carts:    carts,
		logger:   logger,
	}
}

// Submit composes selections into an order and delivers it.
// Composition failures (unknown product, invalid quantity, below minimum order,
// invalid customer) are returned as errors and nothing is sent. A delivery
// failure is not an error: the result has Delivered=false and a localized message.
func (s *CheckoutService) Submit(ctx context.Context, selections []order.CartSelection, customer order.CustomerInfo, locale i18n.Locale) (*CheckoutResult, error) {
	if len(selections) == 0 {
		return s.SubmitContact(ctx, customer, locale)
	}
	comp, err := s.composer.ComposeWithTotal(selections, customer, locale)
	if err != nil {
		return nil, err
	}
	return s.deliver(ctx, comp, i18n.MsgOrderDelivered, i18n.MsgOrderFailed)
}

// SubmitContact sends a contact-form payload with no items
func (s *CheckoutService) SubmitContact(ctx context.Context, customer order.CustomerInfo, locale i18n.Locale) (*CheckoutResult, error) {
	comp, err := s.composer.ComposeWithTotal(nil, customer, locale)
	if err != nil {
		return nil, err
	}
	return s.deliver(ctx, comp, i18n.MsgContactDelivered, i18n.MsgContactFailed)
}

// SubmitCart submits the stored cart for session and clears it once delivered
func (s *CheckoutService) SubmitCart(ctx context.Context, session string, customer order.CustomerInfo, locale i18n.Locale) (*CheckoutResult, error) {
	cart, err := s.carts.Load(ctx, session)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	result, err := s.Submit(ctx, cart.Items, customer, locale)
	if err != nil {
		return nil, err
	}
	if result.Delivered {
		if err := s.carts.Clear(ctx, session); err != nil {
			s.logger.Warn("failed to clear cart after delivery", zap.Error(err))
		}
	}
	return result, nil
}

func (s *CheckoutService) deliver(ctx context.Context, comp *Composition, okKey, failKey string) (*CheckoutResult, error) {
	payload := comp.Payload
	key := payload.Fingerprint()
	start := time.Now()

	ctx, span := telemetry.StartSpan(ctx, "checkout.deliver",
		telemetry.WithAttribute(telemetry.SpanAttrOrderKey, key[:12]),
		telemetry.WithAttribute(telemetry.SpanAttrItems, len(payload.Items)),
	)
	defer span.End()

	ch := s.inflight.DoChan(key, func() (any, error) {
		snapshot := payload.Clone()
		return s.gateway.Deliver(ctx, &snapshot), nil
	})

	var delivered, shared bool
	select {
	case res := <-ch:
		delivered = res.Val.(bool)
		shared = res.Shared
	case <-ctx.Done():
		// The request already issued keeps going; this caller only stops waiting.
		s.logger.Info("checkout caller stopped waiting for delivery",
			zap.String("order", key[:12]),
		)
		telemetry.RecordError(span, ctx.Err())
		return nil, ctx.Err()
	}

	s.logger.Info("order submitted",
		zap.String("order", key[:12]),
		zap.Bool("contact", payload.IsContact()),
		zap.Int("items", len(payload.Items)),
		zap.String("language", payload.Language.String()),
		zap.Bool("delivered", delivered),
		zap.Bool("shared", shared),
		zap.Duration("latency", time.Since(start)),
	)

	telemetry.SetAttributes(span, telemetry.SpanAttrDelivered, delivered)
	msg := failKey
	if delivered {
		msg = okKey
		telemetry.SetOK(span)
	} else {
		telemetry.RecordFailure(span, "notification not delivered")
	}
	return &CheckoutResult{
		Payload:   payload.Clone(),
		Total:     comp.Total,
		Delivered: delivered,
		Message:   i18n.Message(msg, payload.Language),
	}, nil
}
