package queries

import (
	"context"
	"encoding/json"

	"bikepacking-api/internal/domain/payment"
	"bikepacking-api/internal/pkg/errs"
	"bikepacking-api/internal/usecase/shared"
)

const (
	DefaultEventListLimit = 50
	MaxEventListLimit     = 500
)

var ErrInvalidEventStatus = errs.New("invalid webhook event status")

type WebhookEventReadStore interface {
	List(ctx context.Context, status string, limit int32) ([]shared.WebhookEventRecord, error)
}

type WebhookEventQueries interface {
	// ListEvents returns recorded deliveries newest first. An empty status lists all.
	ListEvents(ctx context.Context, status string, limit int) ([]WebhookEventView, error)
}

type webhookEventQueriesImpl struct {
	readStore WebhookEventReadStore
}

func NewWebhookEventQueries(readStore WebhookEventReadStore) WebhookEventQueries {
	return &webhookEventQueriesImpl{readStore: readStore}
}

func (q *webhookEventQueriesImpl) ListEvents(ctx context.Context, status string, limit int) ([]WebhookEventView, error) {
	if status != "" && !payment.EventStatus(status).IsValid() {
		return nil, ErrInvalidEventStatus
	}
	switch {
	case limit <= 0:
		limit = DefaultEventListLimit
	case limit > MaxEventListLimit:
		limit = MaxEventListLimit
	}

	records, err := q.readStore.List(ctx, status, int32(limit))
	if err != nil {
		return nil, err
	}

	views := make([]WebhookEventView, 0, len(records))
	for _, r := range records {
		views = append(views, WebhookEventView{
			EventID:    r.EventID,
			Provider:   r.Provider,
			EventType:  r.EventType,
			PaymentID:  r.PaymentID,
			Status:     r.Status,
			Reason:     r.Reason,
			Attempts:   r.Attempts,
			PurchaseID: r.PurchaseID,
			Payload:    json.RawMessage(r.Payload),
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		})
	}
	return views, nil
}
