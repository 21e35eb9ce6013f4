package converter

import (
	"bikepacking-api/internal/domain/purchase"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/pkg/pgconv"
)

func PurchaseToInsertParams(p *purchase.Purchase) sqlc.InsertPurchaseParams {
	pay := p.Payment()
	return sqlc.InsertPurchaseParams{
		UserID:          p.UserID(),
		BookID:          p.BookID(),
		PaymentID:       pgconv.StringPtrToPgtype(pay.ID),
		PaymentProvider: pay.Provider.String(),
		PaymentAmount:   pgconv.Int64PtrToPgtype(pay.Amount),
		PaymentCurrency: pgconv.StringPtrToPgtype(pay.Currency),
		AccessKey:       p.AccessKey(),
	}
}

func PurchaseFromRow(row sqlc.BookPurchases) *purchase.Purchase {
	return purchase.Reconstruct(
		row.ID,
		row.UserID,
		row.BookID,
		purchase.Payment{
			ID:       pgconv.StringPtrFromPgtype(row.PaymentID),
			Provider: purchase.Provider(row.PaymentProvider),
			Amount:   pgconv.Int64PtrFromPgtype(row.PaymentAmount),
			Currency: pgconv.StringPtrFromPgtype(row.PaymentCurrency),
		},
		row.AccessKey,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
