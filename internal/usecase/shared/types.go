package shared

import "time"

// Minimal snapshots for command read operations
type UserSnapshot struct {
	ID       int64
	Email    string
	Role     string
	IsActive bool
}

type BookSnapshot struct {
	ID            int64
	Title         string
	PriceAmount   *int64
	PriceCurrency string
}

type WebhookEventInput struct {
	EventID   string
	Provider  string
	EventType string
	PaymentID *string
	Payload   []byte
}

type WebhookEventRecord struct {
	EventID    string
	Provider   string
	EventType  string
	PaymentID  *string
	Payload    []byte
	Status     string
	Reason     *string
	Attempts   int32
	PurchaseID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
