package commands

import (
	"context"
	"fmt"
	"log/slog"

	"bikepacking-api/internal/domain/payment"
	"bikepacking-api/internal/domain/purchase"
	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/pkg/errs"
	"bikepacking-api/internal/usecase/shared"
)

const (
	ProviderSquare = "square"

	ReasonNoPayment        = "No payment object in event data"
	ReasonTemporaryFailure = "Temporary failure while recording purchase"
	MessageTestReceived    = "Test notification received"
)

// Outcome labels reported to metrics.
const (
	OutcomeProcessed        = "processed"
	OutcomeDuplicate        = "duplicate"
	OutcomeSkipped          = "skipped"
	OutcomeFailed           = "failed"
	OutcomeTest             = "test"
	OutcomeInvalidSignature = "invalid_signature"
	OutcomeInvalidPayload   = "invalid_payload"
)

var (
	ErrInvalidSignature      = errs.New("invalid signature")
	ErrInvalidPayload        = errs.New("invalid json")
	ErrWebhookEventNotFound  = errs.New("webhook event not found")
	ErrWebhookEventNoPayload = errs.New("webhook event has no stored payload")
)

// Delivery is one inbound webhook request.
type Delivery struct {
	Body            []byte
	Signature       string
	NotificationURL string
}

// WebhookOutcome is the business result of a delivery. Every outcome is
// acknowledged to the provider; Processed=false tells operators it needs a look.
type WebhookOutcome struct {
	EventID   string
	Processed bool
	Reason    string
	Test      bool
	Message   string
	UserID    *int64
	BookID    *int64
	PaymentID *string
	AccessKey *string

	status     payment.EventStatus
	purchaseID *int64
	label      string
}

type WebhookCommands interface {
	HandleDelivery(ctx context.Context, d Delivery) (*WebhookOutcome, error)
	// Replay re-runs a recorded delivery without checking its signature.
	Replay(ctx context.Context, eventID string) (*WebhookOutcome, error)
}

type webhookCommandsImpl struct {
	uow        shared.UnitOfWork
	verifier   SignatureVerifier
	decoder    EventDecoder
	normalizer *Normalizer
	purchases  PurchaseCommands
	metrics    Metrics
}

func NewWebhookCommands(
	uow shared.UnitOfWork,
	verifier SignatureVerifier,
	decoder EventDecoder,
	normalizer *Normalizer,
	purchases PurchaseCommands,
	metrics Metrics,
) WebhookCommands {
	return &webhookCommandsImpl{
		uow:        uow,
		verifier:   verifier,
		decoder:    decoder,
		normalizer: normalizer,
		purchases:  purchases,
		metrics:    metrics,
	}
}

func (c *webhookCommandsImpl) HandleDelivery(ctx context.Context, d Delivery) (*WebhookOutcome, error) {
	if !c.verifier.Verify(d.Signature, d.Body, d.NotificationURL) {
		c.record(OutcomeInvalidSignature)
		return nil, ErrInvalidSignature
	}

	ev, err := c.decoder.Decode(d.Body)
	if err != nil {
		c.record(OutcomeInvalidPayload)
		return nil, errs.Mark(err, ErrInvalidPayload)
	}

	slog.Info("payment webhook received", "event_id", ev.ID, "event_type", ev.Type)
	return c.run(ctx, ev), nil
}

func (c *webhookCommandsImpl) Replay(ctx context.Context, eventID string) (*WebhookOutcome, error) {
	stored, err := c.uow.CommandReads().WebhookEventByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrWebhookEventNotFound)
		}
		return nil, err
	}
	if len(stored.Payload) == 0 {
		return nil, ErrWebhookEventNoPayload
	}

	ev, err := c.decoder.Decode(stored.Payload)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPayload)
	}
	if ev.ID == "" {
		ev.ID = stored.EventID
	}

	slog.Info("replaying payment webhook", "event_id", ev.ID, "previous_status", stored.Status, "attempts", stored.Attempts)
	return c.run(ctx, ev), nil
}

func (c *webhookCommandsImpl) run(ctx context.Context, ev *payment.Event) *WebhookOutcome {
	c.ledgerRecord(ctx, ev)

	out := c.process(ctx, ev)
	out.EventID = ev.ID

	c.ledgerMark(ctx, ev, out)
	c.record(out.label)
	return out
}

func (c *webhookCommandsImpl) process(ctx context.Context, ev *payment.Event) *WebhookOutcome {
	switch ev.Type {
	case payment.EventTypeTestNotification:
		return &WebhookOutcome{
			Processed: true,
			Test:      true,
			Message:   MessageTestReceived,
			status:    payment.EventStatusProcessed,
			label:     OutcomeTest,
		}
	case payment.EventTypePaymentUpdated:
		return c.processPayment(ctx, ev)
	default:
		return skipped(fmt.Sprintf("Unhandled event type: %s", ev.Type))
	}
}

func (c *webhookCommandsImpl) processPayment(ctx context.Context, ev *payment.Event) *WebhookOutcome {
	p := ev.Payment
	if p == nil || (p.ID == "" && p.Status == "") {
		return skipped(ReasonNoPayment)
	}

	norm := c.normalizer.Normalize(ctx, p)
	if !norm.Ready {
		slog.Info("payment not reconciled",
			"event_id", ev.ID,
			"payment_id", p.ID,
			"order_fetched", norm.Facts.OrderFetched,
			"reason", norm.Reason)
		return skipped(norm.Reason)
	}
	facts := norm.Facts

	in := ReconcileInput{
		UserEmail: facts.BuyerEmail,
		BookID:    facts.BookID,
		Provider:  purchase.ProviderSquare,
		Amount:    facts.Amount,
	}
	if facts.PaymentID != "" {
		id := facts.PaymentID
		in.PaymentID = &id
	}
	if facts.Currency != "" {
		cur := facts.Currency
		in.Currency = &cur
	}

	res, err := c.purchases.Reconcile(ctx, in)
	if err != nil {
		switch {
		case errs.Is(err, ErrUserNotFound):
			slog.Warn("no user for payment buyer email", "event_id", ev.ID, "payment_id", p.ID)
			return skipped(fmt.Sprintf("User not found for email: %s", facts.BuyerEmail))
		case errs.Is(err, ErrBookNotFound):
			return skipped(fmt.Sprintf("Book not found: %d", facts.BookID))
		case errs.Is(err, ErrInvalidPurchase):
			return skipped(fmt.Sprintf("Invalid payment data: %v", err))
		default:
			slog.Error("failed to record purchase",
				"event_id", ev.ID,
				"payment_id", p.ID,
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, 8))
			return &WebhookOutcome{
				Reason: ReasonTemporaryFailure,
				status: payment.EventStatusFailed,
				label:  OutcomeFailed,
			}
		}
	}

	out := &WebhookOutcome{
		Processed:  true,
		UserID:     &res.UserID,
		BookID:     &res.BookID,
		PaymentID:  res.PaymentID,
		AccessKey:  &res.AccessKey,
		status:     payment.EventStatusProcessed,
		purchaseID: &res.PurchaseID,
		label:      OutcomeProcessed,
	}
	if !res.Created {
		out.Message = "Payment already reconciled"
		out.label = OutcomeDuplicate
	}
	return out
}

func skipped(reason string) *WebhookOutcome {
	return &WebhookOutcome{
		Reason: reason,
		status: payment.EventStatusSkipped,
		label:  OutcomeSkipped,
	}
}

// Ledger writes are best-effort: a delivery is still answered when they fail.

func (c *webhookCommandsImpl) ledgerRecord(ctx context.Context, ev *payment.Event) {
	if ev.ID == "" {
		return
	}
	in := shared.WebhookEventInput{
		EventID:   ev.ID,
		Provider:  ProviderSquare,
		EventType: ev.Type,
		Payload:   ev.Raw,
	}
	if ev.Payment != nil && ev.Payment.ID != "" {
		id := ev.Payment.ID
		in.PaymentID = &id
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		attempts, err := tx.WebhookEvents().Record(ctx, tx.DB(), in)
		if err != nil {
			return err
		}
		if attempts > 1 {
			slog.Info("webhook event seen again", "event_id", ev.ID, "attempts", attempts)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to record webhook event", "event_id", ev.ID, "error", err.Error())
	}
}

func (c *webhookCommandsImpl) ledgerMark(ctx context.Context, ev *payment.Event, out *WebhookOutcome) {
	if ev.ID == "" {
		return
	}
	var reason *string
	if out.Reason != "" {
		r := out.Reason
		reason = &r
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.WebhookEvents().Mark(ctx, tx.DB(), ev.ID, out.status, reason, out.purchaseID)
	})
	if err != nil {
		slog.Error("failed to update webhook event status", "event_id", ev.ID, "status", string(out.status), "error", err.Error())
	}
}

func (c *webhookCommandsImpl) record(label string) {
	if c.metrics != nil {
		c.metrics.RecordWebhook(label)
	}
}
