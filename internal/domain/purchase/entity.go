package purchase

import (
	"errors"
	"strings"
	"time"

	"bikepacking-api/internal/pkg/accesskey"
)

var (
	ErrInvalidProvider  = errors.New("invalid payment provider")
	ErrInvalidBookID    = errors.New("book id must be positive")
	ErrInvalidUserID    = errors.New("user id must be positive")
	ErrInvalidAmount    = errors.New("payment amount must not be negative")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter ISO code")
	ErrPaymentIDMissing = errors.New("payment id is required for provider payments")
)

// Purchase is one entitlement of a user to a book.
// The access key is generated once at creation and never changes.
type Purchase struct {
	id        int64
	userID    int64
	bookID    int64
	payment   Payment
	accessKey string
	createdAt time.Time
}

// Payment carries the provider facts recorded with a purchase.
type Payment struct {
	ID       *string
	Provider Provider
	Amount   *int64
	Currency *string
}

func NewPurchase(gen accesskey.Generator, userID, bookID int64, payment Payment) (*Purchase, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if bookID <= 0 {
		return nil, ErrInvalidBookID
	}
	normalized, err := normalizePayment(payment)
	if err != nil {
		return nil, err
	}

	key, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	return &Purchase{
		userID:    userID,
		bookID:    bookID,
		payment:   normalized,
		accessKey: key,
	}, nil
}

// Reconstruct rebuilds a stored purchase.
func Reconstruct(id, userID, bookID int64, payment Payment, accessKey string, createdAt time.Time) *Purchase {
	return &Purchase{
		id:        id,
		userID:    userID,
		bookID:    bookID,
		payment:   payment,
		accessKey: accessKey,
		createdAt: createdAt,
	}
}

func (p *Purchase) ID() int64            { return p.id }
func (p *Purchase) UserID() int64        { return p.userID }
func (p *Purchase) BookID() int64        { return p.bookID }
func (p *Purchase) Payment() Payment     { return p.payment }
func (p *Purchase) AccessKey() string    { return p.accessKey }
func (p *Purchase) CreatedAt() time.Time { return p.createdAt }

func normalizePayment(p Payment) (Payment, error) {
	if !p.Provider.IsValid() {
		return Payment{}, ErrInvalidProvider
	}
	if p.ID != nil && strings.TrimSpace(*p.ID) == "" {
		p.ID = nil
	}
	if p.Provider != ProviderManual && p.ID == nil {
		return Payment{}, ErrPaymentIDMissing
	}
	if p.Amount != nil && *p.Amount < 0 {
		return Payment{}, ErrInvalidAmount
	}
	if p.Amount != nil && p.Currency == nil {
		c := DefaultCurrency
		p.Currency = &c
	}
	if p.Currency != nil {
		c := strings.ToUpper(strings.TrimSpace(*p.Currency))
		if len(c) != 3 {
			return Payment{}, ErrInvalidCurrency
		}
		p.Currency = &c
	}
	return p, nil
}
