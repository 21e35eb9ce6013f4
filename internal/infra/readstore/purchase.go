package readstore

import (
	"context"

	"bikepacking-api/internal/infra"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/pkg/pgconv"
)

type PurchaseReadQueries interface {
	ListPurchasedBookIDs(ctx context.Context, db sqlc.DBTX, userID int64) ([]int64, error)
	FirstAccessKey(ctx context.Context, db sqlc.DBTX, arg sqlc.FirstAccessKeyParams) (string, error)
	HasPurchased(ctx context.Context, db sqlc.DBTX, arg sqlc.HasPurchasedParams) (bool, error)
	FindAccessKeyOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.FindAccessKeyOwnerParams) (int64, error)
}

type PurchaseReadStore struct {
	queries PurchaseReadQueries
	db      sqlc.DBTX
}

func NewPurchaseReadStore(queries PurchaseReadQueries, db sqlc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseReadStore) BookIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := r.queries.ListPurchasedBookIDs(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchased books", err)
	}
	return ids, nil
}

// FirstAccessKey returns the key of the earliest purchase of the book by the user.
func (r *PurchaseReadStore) FirstAccessKey(ctx context.Context, userID, bookID int64) (string, error) {
	key, err := r.queries.FirstAccessKey(ctx, r.db, sqlc.FirstAccessKeyParams{UserID: userID, BookID: bookID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find access key", err)
	}
	return key, nil
}

func (r *PurchaseReadStore) HasPurchased(ctx context.Context, userID, bookID int64) (bool, error) {
	ok, err := r.queries.HasPurchased(ctx, r.db, sqlc.HasPurchasedParams{UserID: userID, BookID: bookID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check purchase", err)
	}
	return ok, nil
}

func (r *PurchaseReadStore) AccessKeyOwner(ctx context.Context, accessKey string, bookID int64) (int64, error) {
	userID, err := r.queries.FindAccessKeyOwner(ctx, r.db, sqlc.FindAccessKeyOwnerParams{AccessKey: accessKey, BookID: bookID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("access key not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to validate access key", err)
	}
	return userID, nil
}
