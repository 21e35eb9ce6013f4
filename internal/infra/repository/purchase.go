package repository

import (
	"context"

	"bikepacking-api/internal/domain/purchase"
	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/infra/repository/converter"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type PurchaseWriteQueries interface {
	InsertPurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPurchaseParams) (sqlc.BookPurchases, error)
	GetPurchaseByPaymentID(ctx context.Context, db sqlc.DBTX, paymentID pgtype.Text) (sqlc.BookPurchases, error)
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
}

func NewPurchaseRepository(queries PurchaseWriteQueries) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
	}
}

// InsertOnce relies on the partial unique index on payment_id: a conflicting
// insert returns no row and the existing purchase is read back in the same tx.
// A DUPLICATE_KEY error can only mean an access_key collision.
func (r *PurchaseRepository) InsertOnce(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) (*purchase.Purchase, bool, error) {
	row, err := r.queries.InsertPurchase(ctx, tx, converter.PurchaseToInsertParams(p))
	if err == nil {
		return converter.PurchaseFromRow(row), true, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, false, infra.WrapRepoErr("failed to insert purchase", err)
	}

	paymentID := p.Payment().ID
	if paymentID == nil {
		return nil, false, infra.WrapRepoErr("insert without payment id returned no row", err)
	}

	existing, err := r.FindByPaymentID(ctx, tx, *paymentID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *PurchaseRepository) FindByPaymentID(ctx context.Context, tx sqlc.DBTX, paymentID string) (*purchase.Purchase, error) {
	row, err := r.queries.GetPurchaseByPaymentID(ctx, tx, pgconv.StringToPgtype(paymentID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find purchase by payment id", err)
	}
	return converter.PurchaseFromRow(row), nil
}
