package readstore

import (
	"context"

	"bikepacking-api/internal/infra"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/pkg/pgconv"
	"bikepacking-api/internal/usecase/shared"
)

type WebhookEventReadQueries interface {
	GetWebhookEvent(ctx context.Context, db sqlc.DBTX, eventID string) (sqlc.PaymentWebhookEvents, error)
	ListWebhookEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListWebhookEventsParams) ([]sqlc.PaymentWebhookEvents, error)
}

type WebhookEventReadStore struct {
	queries WebhookEventReadQueries
	db      sqlc.DBTX
}

func NewWebhookEventReadStore(queries WebhookEventReadQueries, db sqlc.DBTX) *WebhookEventReadStore {
	return &WebhookEventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WebhookEventReadStore) Get(ctx context.Context, eventID string) (*shared.WebhookEventRecord, error) {
	row, err := r.queries.GetWebhookEvent(ctx, r.db, eventID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("webhook event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get webhook event", err)
	}
	return toWebhookEventRecord(row), nil
}

// List returns newest first. An empty status lists every status.
func (r *WebhookEventReadStore) List(ctx context.Context, status string, limit int32) ([]shared.WebhookEventRecord, error) {
	rows, err := r.queries.ListWebhookEvents(ctx, r.db, sqlc.ListWebhookEventsParams{
		Status:   pgconv.NonEmptyToPgtype(status),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhook events", err)
	}

	records := make([]shared.WebhookEventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, *toWebhookEventRecord(row))
	}
	return records, nil
}

func toWebhookEventRecord(row sqlc.PaymentWebhookEvents) *shared.WebhookEventRecord {
	return &shared.WebhookEventRecord{
		EventID:    row.EventID,
		Provider:   row.Provider,
		EventType:  row.EventType,
		PaymentID:  pgconv.StringPtrFromPgtype(row.PaymentID),
		Payload:    row.Payload,
		Status:     row.Status,
		Reason:     pgconv.StringPtrFromPgtype(row.Reason),
		Attempts:   row.Attempts,
		PurchaseID: pgconv.Int64PtrFromPgtype(row.PurchaseID),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
