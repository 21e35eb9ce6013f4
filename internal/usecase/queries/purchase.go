package queries

import (
	"context"

	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/pkg/accesskey"
	"bikepacking-api/internal/pkg/errs"
)

var ErrPurchaseNotFound = errs.ErrPurchaseNotFound

type PurchaseReadStore interface {
	BookIDsForUser(ctx context.Context, userID int64) ([]int64, error)
	FirstAccessKey(ctx context.Context, userID, bookID int64) (string, error)
	HasPurchased(ctx context.Context, userID, bookID int64) (bool, error)
	AccessKeyOwner(ctx context.Context, accessKey string, bookID int64) (int64, error)
}

type PurchaseQueries interface {
	PurchasedBookIDs(ctx context.Context, userID int64) ([]int64, error)
	// AccessKey returns the key of the earliest purchase of the book by the user.
	AccessKey(ctx context.Context, userID, bookID int64) (string, error)
	HasPurchased(ctx context.Context, userID, bookID int64) (bool, error)
	ValidateAccessKey(ctx context.Context, accessKey string, bookID int64) (*AccessKeyValidation, error)
}

type purchaseQueriesImpl struct {
	readStore PurchaseReadStore
}

func NewPurchaseQueries(readStore PurchaseReadStore) PurchaseQueries {
	return &purchaseQueriesImpl{readStore: readStore}
}

func (q *purchaseQueriesImpl) PurchasedBookIDs(ctx context.Context, userID int64) ([]int64, error) {
	return q.readStore.BookIDsForUser(ctx, userID)
}

func (q *purchaseQueriesImpl) AccessKey(ctx context.Context, userID, bookID int64) (string, error) {
	key, err := q.readStore.FirstAccessKey(ctx, userID, bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrPurchaseNotFound)
		}
		return "", err
	}
	return key, nil
}

func (q *purchaseQueriesImpl) HasPurchased(ctx context.Context, userID, bookID int64) (bool, error) {
	return q.readStore.HasPurchased(ctx, userID, bookID)
}

func (q *purchaseQueriesImpl) ValidateAccessKey(ctx context.Context, accessKey string, bookID int64) (*AccessKeyValidation, error) {
	if !accesskey.LooksValid(accessKey) {
		return &AccessKeyValidation{Valid: false}, nil
	}

	owner, err := q.readStore.AccessKeyOwner(ctx, accessKey, bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &AccessKeyValidation{Valid: false}, nil
		}
		return nil, err
	}
	return &AccessKeyValidation{Valid: true, UserID: &owner}, nil
}
