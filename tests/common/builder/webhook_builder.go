//go:build unit || e2e

package builder

import (
	"encoding/json"
)

// WebhookBuilder assembles Square payment.updated deliveries.
type WebhookBuilder struct {
	EventID   string
	Type      string
	PaymentID string
	Status    string
	Email     string
	BookID    string
	OrderID   string
	Note      string
	Amount    int64
	Currency  string
}

func NewWebhookBuilder() *WebhookBuilder {
	return &WebhookBuilder{
		EventID:   "evt_1",
		Type:      "payment.updated",
		PaymentID: "pay_1",
		Status:    "COMPLETED",
		Email:     "rider@example.com",
		BookID:    "7",
		Amount:    1500,
		Currency:  "GBP",
	}
}

func (b *WebhookBuilder) With(mutate func(*WebhookBuilder)) *WebhookBuilder {
	mutate(b)
	return b
}

func (b *WebhookBuilder) BuildMap() map[string]any {
	p := map[string]any{
		"id":     b.PaymentID,
		"status": b.Status,
		"amount_money": map[string]any{
			"amount":   b.Amount,
			"currency": b.Currency,
		},
	}
	if b.Email != "" {
		p["buyer_email_address"] = b.Email
	}
	if b.BookID != "" {
		p["metadata"] = map[string]any{"book_id": b.BookID}
	}
	if b.OrderID != "" {
		p["order_id"] = b.OrderID
	}
	if b.Note != "" {
		p["order"] = map[string]any{"id": b.OrderID, "note": b.Note}
	}

	return map[string]any{
		"merchant_id": "MERCHANT",
		"type":        b.Type,
		"event_id":    b.EventID,
		"created_at":  "2025-05-01T12:00:00Z",
		"data": map[string]any{
			"type":   "payment",
			"id":     b.PaymentID,
			"object": map[string]any{"payment": p},
		},
	}
}

func (b *WebhookBuilder) BuildJSON() []byte {
	out, _ := json.Marshal(b.BuildMap())
	return out
}
