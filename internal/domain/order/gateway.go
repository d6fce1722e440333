package order

import "context"

// Gateway delivers a payload to the external notification channel.
//
// Deliver reports only whether the channel accepted the payload. It never
// returns an error and never retries: a false result means the caller decides
// whether to tell the customer and whether to allow a manual resubmission.
// Implementations are stateless and safe for concurrent use.
type Gateway interface {
	Deliver(ctx context.Context, payload *Payload) bool
}

// GatewayFunc adapts a function to Gateway
type GatewayFunc func(ctx context.Context, payload *Payload) bool

// Deliver calls f
func (f GatewayFunc) Deliver(ctx context.Context, payload *Payload) bool {
	return f(ctx, payload)
}
