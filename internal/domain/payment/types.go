package payment

import "encoding/json"

const (
	StatusCompleted = "COMPLETED"

	EventTypePaymentUpdated   = "payment.updated"
	EventTypeTestNotification = "test.notification"

	MetadataBookID    = "book_id"
	MetadataUserEmail = "user_email"
)

// Event is a provider webhook delivery reduced to what the system consumes.
type Event struct {
	ID      string
	Type    string
	Payment *Payment
	Raw     json.RawMessage
}

type Money struct {
	Amount   *int64
	Currency string
}

// Payment is the provider payment object. Every email-like field the provider
// has used is kept because any of them may carry the buyer address.
type Payment struct {
	ID                string
	Status            string
	OrderID           string
	BuyerEmailAddress string
	BuyerEmail        string
	EmailAddress      string
	Email             string
	BillingEmail      string
	Metadata          map[string]string
	Order             *Order // embedded order, present on some deliveries
	AmountMoney       *Money
}

type Order struct {
	ID         string
	LocationID string
	Note       string
	BuyerEmail string
	Metadata   map[string]string
}

type PaymentLink struct {
	ID      string
	URL     string
	OrderID string
}

type Location struct {
	ID     string
	Name   string
	Status string
}

// CheckoutRequest describes a single-item payment link for one buyer and one book.
type CheckoutRequest struct {
	IdempotencyKey string
	LocationID     string
	BookID         int64
	Title          string
	Amount         int64
	Currency       string
	BuyerEmail     string
}

// EventStatus is the processing state of a recorded webhook delivery.
type EventStatus string

const (
	EventStatusReceived  EventStatus = "received"
	EventStatusProcessed EventStatus = "processed"
	EventStatusSkipped   EventStatus = "skipped"
	EventStatusFailed    EventStatus = "failed"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusReceived, EventStatusProcessed, EventStatusSkipped, EventStatusFailed:
		return true
	default:
		return false
	}
}
