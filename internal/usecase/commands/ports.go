package commands

import (
	"context"

	"bikepacking-api/internal/domain/payment"
)

// OrderFetcher is the provider lookup used when a payment lacks buyer or book facts.
type OrderFetcher interface {
	GetOrder(ctx context.Context, orderID string) (*payment.Order, error)
}

type SignatureVerifier interface {
	Verify(signature string, body []byte, notificationURL string) bool
}

type EventDecoder interface {
	Decode(raw []byte) (*payment.Event, error)
}

type CheckoutProvider interface {
	CreatePaymentLink(ctx context.Context, req payment.CheckoutRequest) (*payment.PaymentLink, error)
}

type Metrics interface {
	RecordWebhook(outcome string)
	RecordReconciliation(provider string, created bool)
	RecordOrderFetch(ok bool)
}
