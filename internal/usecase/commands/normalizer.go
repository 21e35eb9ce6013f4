package commands

import (
	"context"
	"fmt"
	"log/slog"

	"bikepacking-api/internal/domain/payment"
)

const (
	ReasonNoEmail  = "No buyer email address in payment or order metadata"
	ReasonNoBookID = "No book_id in payment or order metadata"
)

// NormalizeResult is either Ready with complete facts or carries the reason
// the payment cannot be reconciled. Neither case is an error.
type NormalizeResult struct {
	Facts  payment.Facts
	Ready  bool
	Reason string
}

type Normalizer struct {
	orders  OrderFetcher
	metrics Metrics
}

func NewNormalizer(orders OrderFetcher, metrics Metrics) *Normalizer {
	return &Normalizer{orders: orders, metrics: metrics}
}

// Normalize extracts the facts of a payment, fetching its order at most once
// when the payment itself lacks the buyer email or the book id.
func (n *Normalizer) Normalize(ctx context.Context, p *payment.Payment) NormalizeResult {
	facts := payment.InitialFacts(p)
	if !facts.Completed() {
		return NormalizeResult{
			Facts:  facts,
			Reason: fmt.Sprintf("Payment status is %s, not COMPLETED", facts.Status),
		}
	}

	if facts.NeedsOrder() && p.OrderID != "" {
		facts = facts.MergeOrder(n.fetchOrder(ctx, p.ID, p.OrderID))
	}

	switch {
	case facts.BuyerEmail == "":
		return NormalizeResult{Facts: facts, Reason: ReasonNoEmail}
	case facts.BookID == 0:
		return NormalizeResult{Facts: facts, Reason: ReasonNoBookID}
	}
	return NormalizeResult{Facts: facts, Ready: true}
}

// fetchOrder is best-effort: any failure is logged and yields nil.
func (n *Normalizer) fetchOrder(ctx context.Context, paymentID, orderID string) *payment.Order {
	if n.orders == nil {
		return nil
	}
	order, err := n.orders.GetOrder(ctx, orderID)
	if n.metrics != nil {
		n.metrics.RecordOrderFetch(err == nil)
	}
	if err != nil {
		slog.Warn("order lookup failed, continuing with payment facts only",
			"payment_id", paymentID,
			"order_id", orderID,
			"error", err.Error())
		return nil
	}
	return order
}
