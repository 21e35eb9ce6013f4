package payment

import (
	"strconv"
	"strings"
)

// Facts are the purchase-relevant values extracted from a payment.
// Zero values mean "not resolved".
type Facts struct {
	PaymentID    string
	Status       string
	BuyerEmail   string
	BookID       int64
	Amount       *int64
	Currency     string
	OrderFetched bool
}

func (f Facts) Completed() bool {
	return f.Status == StatusCompleted
}

// InitialFacts resolves everything available on the payment itself.
func InitialFacts(p *Payment) Facts {
	f := Facts{
		PaymentID:  p.ID,
		Status:     p.Status,
		BuyerEmail: p.ResolveEmail(),
		BookID:     BookIDFromMetadata(p.Metadata),
		Currency:   defaultCurrency,
	}
	if p.AmountMoney != nil {
		f.Amount = p.AmountMoney.Amount
		if c := strings.TrimSpace(p.AmountMoney.Currency); c != "" {
			f.Currency = c
		}
	}
	return f
}

// NeedsOrder reports whether an order lookup could still fill a gap.
func (f Facts) NeedsOrder() bool {
	return f.BuyerEmail == "" || f.BookID == 0
}

// MergeOrder fills the missing facts from a fetched order. Facts already found win.
func (f Facts) MergeOrder(o *Order) Facts {
	f.OrderFetched = true
	if o == nil {
		return f
	}
	if f.BookID == 0 {
		f.BookID = o.ResolveBookID()
	}
	if f.BuyerEmail == "" {
		f.BuyerEmail = o.ResolveEmail()
	}
	return f
}

const defaultCurrency = "GBP"

// ResolveEmail walks the payment-level sources in priority order:
// direct fields, billing address, payment metadata, embedded order metadata.
func (p *Payment) ResolveEmail() string {
	for _, v := range []string{p.BuyerEmailAddress, p.BuyerEmail, p.EmailAddress, p.Email, p.BillingEmail} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	if v := strings.TrimSpace(p.Metadata[MetadataUserEmail]); v != "" {
		return v
	}
	if p.Order != nil {
		if v := strings.TrimSpace(p.Order.Metadata[MetadataUserEmail]); v != "" {
			return v
		}
	}
	return ""
}

// ResolveEmail: buyer_email, then metadata.user_email, then the note.
func (o *Order) ResolveEmail() string {
	if v := strings.TrimSpace(o.BuyerEmail); v != "" {
		return v
	}
	if v := strings.TrimSpace(o.Metadata[MetadataUserEmail]); v != "" {
		return v
	}
	return ParseNote(o.Note).Email
}

// ResolveBookID: metadata.book_id, then the note.
func (o *Order) ResolveBookID() int64 {
	if id := BookIDFromMetadata(o.Metadata); id != 0 {
		return id
	}
	return ParseNote(o.Note).BookID
}

func BookIDFromMetadata(md map[string]string) int64 {
	return parseBookID(md[MetadataBookID])
}

func parseBookID(s string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
