package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"bikepacking-api/internal/domain/payment"
	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/pkg/errs"
	"bikepacking-api/internal/usecase/queries"
	"bikepacking-api/internal/usecase/shared"
)

var (
	ErrBookNotForSale      = errs.New("book has no price")
	ErrCheckoutUnavailable = errs.New("payment provider unavailable")
)

type CheckoutResult struct {
	URL           string
	PaymentLinkID string
	OrderID       string
}

type CheckoutCommands interface {
	CreatePaymentLink(ctx context.Context, userID, bookID int64) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow      shared.UnitOfWork
	users    queries.UserReadStore
	provider CheckoutProvider
}

func NewCheckoutCommands(uow shared.UnitOfWork, users queries.UserReadStore, provider CheckoutProvider) CheckoutCommands {
	return &checkoutCommandsImpl{uow: uow, users: users, provider: provider}
}

// CreatePaymentLink starts a checkout for the caller. The buyer email and
// book id travel with the order so the payment webhook can be reconciled.
func (c *checkoutCommandsImpl) CreatePaymentLink(ctx context.Context, userID, bookID int64) (*CheckoutResult, error) {
	book, err := c.uow.CommandReads().BookByID(ctx, bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookNotFound)
		}
		return nil, err
	}
	if book.PriceAmount == nil || *book.PriceAmount <= 0 {
		return nil, ErrBookNotForSale
	}

	buyer, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}

	link, err := c.provider.CreatePaymentLink(ctx, payment.CheckoutRequest{
		IdempotencyKey: uuid.NewString(),
		BookID:         book.ID,
		Title:          book.Title,
		Amount:         *book.PriceAmount,
		Currency:       book.PriceCurrency,
		BuyerEmail:     buyer.Email,
	})
	if err != nil {
		slog.Error("failed to create payment link", "book_id", bookID, "user_id", userID, "error", err.Error())
		return nil, errs.Mark(err, ErrCheckoutUnavailable)
	}

	slog.Info("payment link created", "book_id", bookID, "user_id", userID, "payment_link_id", link.ID, "order_id", link.OrderID)
	return &CheckoutResult{URL: link.URL, PaymentLinkID: link.ID, OrderID: link.OrderID}, nil
}
