package repository

import (
	"context"

	"bikepacking-api/internal/domain/payment"
	"bikepacking-api/internal/infra"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/pkg/pgconv"
	"bikepacking-api/internal/usecase/shared"
)

type WebhookEventWriteQueries interface {
	UpsertWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertWebhookEventParams) (sqlc.PaymentWebhookEvents, error)
	MarkWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkWebhookEventParams) error
}

type WebhookEventRepository struct {
	queries WebhookEventWriteQueries
}

func NewWebhookEventRepository(queries WebhookEventWriteQueries) *WebhookEventRepository {
	return &WebhookEventRepository{
		queries: queries,
	}
}

func (r *WebhookEventRepository) Record(ctx context.Context, tx sqlc.DBTX, ev shared.WebhookEventInput) (int32, error) {
	params := sqlc.UpsertWebhookEventParams{
		EventID:   ev.EventID,
		Provider:  ev.Provider,
		EventType: ev.EventType,
		PaymentID: pgconv.StringPtrToPgtype(ev.PaymentID),
		Payload:   ev.Payload,
	}

	row, err := r.queries.UpsertWebhookEvent(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return row.Attempts, nil
}

func (r *WebhookEventRepository) Mark(ctx context.Context, tx sqlc.DBTX, eventID string, status payment.EventStatus, reason *string, purchaseID *int64) error {
	params := sqlc.MarkWebhookEventParams{
		EventID:    eventID,
		Status:     string(status),
		Reason:     pgconv.StringPtrToPgtype(reason),
		PurchaseID: pgconv.Int64PtrToPgtype(purchaseID),
	}

	if err := r.queries.MarkWebhookEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update webhook event status", err)
	}
	return nil
}
