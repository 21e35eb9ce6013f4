package commands

import (
	"context"
	"log/slog"
	"strings"

	"bikepacking-api/internal/domain/purchase"
	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/pkg/accesskey"
	"bikepacking-api/internal/pkg/errs"
	"bikepacking-api/internal/usecase/shared"
)

const maxKeyAttempts = 3

var (
	ErrBookNotFound       = errs.ErrBookNotFound
	ErrReconcileRetryable = errs.New("purchase reconciliation failed, retry later")
	ErrInvalidPurchase    = errs.New("invalid purchase data")
)

type ReconcileInput struct {
	UserEmail string
	BookID    int64
	PaymentID *string
	Provider  purchase.Provider
	Amount    *int64
	Currency  *string
}

type ReconcileResult struct {
	PurchaseID int64
	UserID     int64
	BookID     int64
	PaymentID  *string
	AccessKey  string
	Created    bool
}

type PurchaseCommands interface {
	// Reconcile records a purchase once per payment id. Re-running it for the
	// same payment returns the stored access key with Created=false.
	Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error)
	// Grant records a manual purchase. Every call creates a new record.
	Grant(ctx context.Context, email string, bookID int64) (*ReconcileResult, error)
}

type purchaseCommandsImpl struct {
	uow     shared.UnitOfWork
	keys    accesskey.Generator
	metrics Metrics
}

func NewPurchaseCommands(uow shared.UnitOfWork, keys accesskey.Generator, metrics Metrics) PurchaseCommands {
	return &purchaseCommandsImpl{
		uow:     uow,
		keys:    keys,
		metrics: metrics,
	}
}

func (c *purchaseCommandsImpl) Grant(ctx context.Context, email string, bookID int64) (*ReconcileResult, error) {
	return c.Reconcile(ctx, ReconcileInput{
		UserEmail: email,
		BookID:    bookID,
		Provider:  purchase.ProviderManual,
	})
}

func (c *purchaseCommandsImpl) Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	in.UserEmail = strings.ToLower(strings.TrimSpace(in.UserEmail))

	// A failed INSERT aborts the transaction, so an access key collision is
	// retried in a fresh one.
	for attempt := 1; ; attempt++ {
		result, err := c.reconcileOnce(ctx, in)
		if err == nil {
			if c.metrics != nil {
				c.metrics.RecordReconciliation(in.Provider.String(), result.Created)
			}
			return result, nil
		}

		if errs.Is(err, ErrUserNotFound) || errs.Is(err, ErrBookNotFound) || errs.Is(err, ErrInvalidPurchase) {
			return nil, err
		}
		if infra.IsKind(err, infra.KindDuplicateKey) && attempt < maxKeyAttempts {
			slog.Warn("access key collision, retrying with a new key",
				"attempt", attempt,
				"book_id", in.BookID,
				"constraint", infra.ConstraintName(err))
			continue
		}
		return nil, errs.Mark(err, ErrReconcileRetryable)
	}
}

func (c *purchaseCommandsImpl) reconcileOnce(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	var result *ReconcileResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByEmail(ctx, in.UserEmail)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return err
		}

		if _, err := tx.Reads().BookByID(ctx, in.BookID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookNotFound)
			}
			return err
		}

		p, err := purchase.NewPurchase(c.keys, u.ID, in.BookID, purchase.Payment{
			ID:       in.PaymentID,
			Provider: in.Provider,
			Amount:   in.Amount,
			Currency: in.Currency,
		})
		if err != nil {
			if errs.Is(err, accesskey.ErrEntropyUnavailable) {
				return err
			}
			return errs.Mark(err, ErrInvalidPurchase)
		}

		stored, created, err := tx.Purchases().InsertOnce(ctx, tx.DB(), p)
		if err != nil {
			return err
		}

		result = &ReconcileResult{
			PurchaseID: stored.ID(),
			UserID:     stored.UserID(),
			BookID:     stored.BookID(),
			PaymentID:  stored.Payment().ID,
			AccessKey:  stored.AccessKey(),
			Created:    created,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		slog.Info("purchase recorded",
			"purchase_id", result.PurchaseID,
			"user_id", result.UserID,
			"book_id", result.BookID,
			"provider", in.Provider.String())
	} else {
		slog.Info("payment already reconciled, returning stored purchase",
			"purchase_id", result.PurchaseID,
			"payment_id", derefString(result.PaymentID))
	}
	return result, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
