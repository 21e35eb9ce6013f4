//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bikepacking-api/internal/domain/payment"
	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/usecase/commands"
	"bikepacking-api/internal/usecase/queries"
	"bikepacking-api/internal/usecase/shared"
	commandsmock "bikepacking-api/tests/mock/commands"
	queriesmock "bikepacking-api/tests/mock/queries"
	sharedmock "bikepacking-api/tests/mock/shared"
)

type checkoutFixture struct {
	reads    *sharedmock.MockCommandReads
	users    *queriesmock.MockUserReadStore
	provider *commandsmock.MockCheckoutProvider
	sut      commands.CheckoutCommands
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	f := checkoutFixture{
		reads:    sharedmock.NewMockCommandReads(ctrl),
		users:    queriesmock.NewMockUserReadStore(ctrl),
		provider: commandsmock.NewMockCheckoutProvider(ctrl),
	}
	uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.sut = commands.NewCheckoutCommands(uow, f.users, f.provider)
	return f
}

func TestCheckoutCommands_CreatePaymentLink(t *testing.T) {
	ctx := context.Background()
	price := int64(1999)
	book := &shared.BookSnapshot{ID: 42, Title: "Bikepacking Wales", PriceAmount: &price, PriceCurrency: "GBP"}

	t.Run("購入者のメールと本IDを載せてリンクを作る", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.reads.EXPECT().BookByID(ctx, int64(42)).Return(book, nil)
		f.users.EXPECT().FindByID(ctx, int64(7)).Return(&queries.UserView{ID: 7, Email: "rider@example.com"}, nil)
		f.provider.EXPECT().CreatePaymentLink(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.CheckoutRequest) (*payment.PaymentLink, error) {
				assert.NotEmpty(t, req.IdempotencyKey)
				assert.Equal(t, int64(42), req.BookID)
				assert.Equal(t, int64(1999), req.Amount)
				assert.Equal(t, "GBP", req.Currency)
				assert.Equal(t, "rider@example.com", req.BuyerEmail)
				return &payment.PaymentLink{ID: "pl_1", URL: "https://square.link/u/abc", OrderID: "ord_1"}, nil
			})

		res, err := f.sut.CreatePaymentLink(ctx, 7, 42)

		require.NoError(t, err)
		assert.Equal(t, "https://square.link/u/abc", res.URL)
		assert.Equal(t, "ord_1", res.OrderID)
	})

	t.Run("価格の無い本は販売不可", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.reads.EXPECT().BookByID(ctx, int64(42)).Return(&shared.BookSnapshot{ID: 42, Title: "Free zine"}, nil)

		_, err := f.sut.CreatePaymentLink(ctx, 7, 42)

		assert.ErrorIs(t, err, commands.ErrBookNotForSale)
	})

	t.Run("存在しない本", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.reads.EXPECT().BookByID(ctx, int64(42)).
			Return(nil, infra.WrapRepoErr("book not found", nil, infra.KindNotFound))

		_, err := f.sut.CreatePaymentLink(ctx, 7, 42)

		assert.ErrorIs(t, err, commands.ErrBookNotFound)
	})

	t.Run("プロバイダ障害はErrCheckoutUnavailable", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.reads.EXPECT().BookByID(ctx, int64(42)).Return(book, nil)
		f.users.EXPECT().FindByID(ctx, int64(7)).Return(&queries.UserView{ID: 7, Email: "rider@example.com"}, nil)
		f.provider.EXPECT().CreatePaymentLink(ctx, gomock.Any()).Return(nil, errors.New("503"))

		_, err := f.sut.CreatePaymentLink(ctx, 7, 42)

		assert.ErrorIs(t, err, commands.ErrCheckoutUnavailable)
	})
}
